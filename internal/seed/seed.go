package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type categorySeed struct {
	Name        string
	Slug        string
	Description string
	Color       string
}

type postSeed struct {
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	FeaturedImage string
	CategorySlug  string
	Tags          []string
	ReadTime      string
}

// Apply inserts sample content for manual testing. It is idempotent via
// ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool, logger *log.Logger) error {
	if err := ensureAdmin(ctx, pool); err != nil {
		return fmt.Errorf("ensure admin user: %w", err)
	}

	categories := []categorySeed{
		{"Digital Marketing", "digital-marketing", "Latest trends and strategies in digital marketing", "#8b5cf6"},
		{"SEO & Analytics", "seo-analytics", "Search engine optimization and web analytics insights", "#06b6d4"},
		{"Social Media", "social-media", "Social media marketing strategies and best practices", "#ec4899"},
		{"Technology", "technology", "Technology trends and innovations in marketing", "#10b981"},
		{"Case Studies", "case-studies", "Real-world success stories and client results", "#f59e0b"},
	}
	ids := make(map[string]int, len(categories))
	for _, cat := range categories {
		id, err := upsertCategory(ctx, pool, cat)
		if err != nil {
			return fmt.Errorf("upsert category %s: %w", cat.Slug, err)
		}
		ids[cat.Slug] = id
		logger.Printf("seeded category %s", cat.Slug)
	}

	posts := []postSeed{
		{
			Title:         "The Future of Digital Marketing: AI and Personalization",
			Slug:          "future-digital-marketing-ai-personalization",
			Excerpt:       "Discover how artificial intelligence is revolutionizing digital marketing through personalized customer experiences and data-driven insights.",
			Content:       "<h2>The AI Revolution in Marketing</h2><p>Artificial intelligence is fundamentally changing how we approach digital marketing. From predictive analytics to personalized content delivery, AI is enabling marketers to create more meaningful connections with their audiences.</p><h3>Key Benefits</h3><ul><li><strong>Personalization at Scale:</strong> AI algorithms analyze behavior patterns to deliver personalized experiences to thousands of users simultaneously.</li><li><strong>Predictive Analytics:</strong> Machine learning models predict customer lifetime value, churn probability, and optimal engagement times.</li><li><strong>Automated Optimization:</strong> Campaigns, subject lines and recommendations improve continuously without manual intervention.</li></ul>",
			FeaturedImage: "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=1200",
			CategorySlug:  "digital-marketing",
			Tags:          []string{"AI", "Marketing", "Personalization"},
			ReadTime:      "3 min read",
		},
		{
			Title:         "SEO Best Practices 2024",
			Slug:          "seo-best-practices-2024",
			Excerpt:       "Latest SEO strategies for better rankings.",
			Content:       "<h2>SEO Trends</h2><p>Core Web Vitals remain crucial for rankings. Focus on page speed, interactivity and visual stability, and pair technical health with genuinely useful content.</p><p>Structured data and topical authority continue to separate winning sites from the rest.</p>",
			FeaturedImage: "https://images.unsplash.com/photo-1560472355-536de3962603?w=1200",
			CategorySlug:  "seo-analytics",
			Tags:          []string{"SEO", "Analytics"},
			ReadTime:      "1 min read",
		},
		{
			Title:         "Building a Social Media Strategy That Converts",
			Slug:          "building-social-media-strategy-converts",
			Excerpt:       "Turn followers into customers with a conversion-focused social playbook.",
			Content:       "<h2>From Reach to Revenue</h2><p>Vanity metrics feel good but rarely pay the bills. A conversion-focused strategy starts with knowing which platforms your buyers actually use, then building content that moves them from awareness to action.</p>",
			FeaturedImage: "https://images.unsplash.com/photo-1611926653458-09294b3142bf?w=1200",
			CategorySlug:  "social-media",
			Tags:          []string{"Social Media", "Strategy"},
			ReadTime:      "1 min read",
		},
	}
	for _, p := range posts {
		if err := upsertPost(ctx, pool, p, ids[p.CategorySlug]); err != nil {
			return fmt.Errorf("upsert post %s: %w", p.Slug, err)
		}
		logger.Printf("seeded post %s", p.Slug)
	}

	return nil
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (username, password_hash, email, role)
VALUES ('admin', $1, 'admin@example.com', 'admin')
ON CONFLICT (username) DO NOTHING
`
	_, err = pool.Exec(ctx, q, string(hashed))
	return err
}

func upsertCategory(ctx context.Context, pool *pgxpool.Pool, c categorySeed) (int, error) {
	const q = `
INSERT INTO categories (name, slug, description, color)
VALUES ($1, $2, $3, $4)
ON CONFLICT (slug) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    color = EXCLUDED.color
RETURNING id
`
	var id int
	if err := pool.QueryRow(ctx, q, c.Name, c.Slug, c.Description, c.Color).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func upsertPost(ctx context.Context, pool *pgxpool.Pool, p postSeed, categoryID int) error {
	const q = `
INSERT INTO blog_posts (title, slug, excerpt, content, featured_image, is_published,
                        published_at, category_id, tags, read_time)
VALUES ($1, $2, $3, $4, $5, true, now(), $6, $7::jsonb, $8)
ON CONFLICT (slug) DO NOTHING
`
	_, err := pool.Exec(ctx, q, p.Title, p.Slug, p.Excerpt, p.Content, p.FeaturedImage,
		categoryID, tagsJSON(p.Tags), p.ReadTime)
	return err
}

func tagsJSON(tags []string) string {
	b, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(b)
}
