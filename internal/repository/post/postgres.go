package post

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"agency-cms/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const postColumns = `
id, title, slug, COALESCE(excerpt, ''), content, COALESCE(featured_image, ''),
is_published, published_at, category_id, COALESCE(author_id::text, ''), tags,
COALESCE(read_time, ''), COALESCE(seo_title, ''), COALESCE(seo_description, ''),
created_at, updated_at`

func scanPost(row pgx.Row) (*domain.BlogPost, error) {
	var (
		p        domain.BlogPost
		tagsJSON []byte
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.FeaturedImage,
		&p.IsPublished, &p.PublishedAt, &p.CategoryID, &p.AuthorID, &tagsJSON,
		&p.ReadTime, &p.SEOTitle, &p.SEODescription, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Tags = []string{}
	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &p.Tags); err != nil {
			return nil, err
		}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}

func (r *postgresRepo) collect(rows pgx.Rows) ([]domain.BlogPost, error) {
	defer rows.Close()
	var result []domain.BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) List(ctx context.Context, published *bool) ([]domain.BlogPost, error) {
	const q = `
SELECT ` + postColumns + `
FROM blog_posts
WHERE $1::boolean IS NULL OR is_published = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, published)
	if err != nil {
		r.logger.Printf("post repo: list error=%v", err)
		return nil, err
	}
	result, err := r.collect(rows)
	if err != nil {
		r.logger.Printf("post repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.BlogPost, error) {
	const q = `SELECT ` + postColumns + ` FROM blog_posts WHERE id = $1`
	p, err := scanPost(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("post repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	const q = `SELECT ` + postColumns + ` FROM blog_posts WHERE slug = $1`
	p, err := scanPost(r.pool.QueryRow(ctx, q, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("post repo: get slug=%s error=%v", slug, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) ListByCategory(ctx context.Context, categoryID int) ([]domain.BlogPost, error) {
	const q = `
SELECT ` + postColumns + `
FROM blog_posts
WHERE category_id = $1 AND is_published = true
ORDER BY published_at DESC
`
	rows, err := r.pool.Query(ctx, q, categoryID)
	if err != nil {
		r.logger.Printf("post repo: list category_id=%d error=%v", categoryID, err)
		return nil, err
	}
	return r.collect(rows)
}

func (r *postgresRepo) Search(ctx context.Context, query string) ([]domain.BlogPost, error) {
	const q = `
SELECT ` + postColumns + `
FROM blog_posts
WHERE is_published = true AND (title ILIKE $1 OR content ILIKE $1)
ORDER BY published_at DESC
`
	rows, err := r.pool.Query(ctx, q, "%"+query+"%")
	if err != nil {
		r.logger.Printf("post repo: search q=%q error=%v", query, err)
		return nil, err
	}
	return r.collect(rows)
}

func (r *postgresRepo) Create(ctx context.Context, p domain.BlogPost) (*domain.BlogPost, error) {
	const q = `
INSERT INTO blog_posts (title, slug, excerpt, content, featured_image, is_published,
                        published_at, category_id, author_id, tags, read_time,
                        seo_title, seo_description)
VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6, $7, $8,
        NULLIF($9, '')::uuid, $10::jsonb, NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, ''))
RETURNING ` + postColumns + `
`
	out, err := scanPost(r.pool.QueryRow(ctx, q,
		p.Title, p.Slug, p.Excerpt, p.Content, p.FeaturedImage, p.IsPublished,
		p.PublishedAt, p.CategoryID, p.AuthorID, tagsJSON(p.Tags), p.ReadTime,
		p.SEOTitle, p.SEODescription,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("post repo: create slug=%s error=%v", p.Slug, err)
		return nil, err
	}
	r.logger.Printf("post repo: created id=%d slug=%s", out.ID, out.Slug)
	return out, nil
}

func (r *postgresRepo) Update(ctx context.Context, id int, p Patch) (*domain.BlogPost, error) {
	const q = `
UPDATE blog_posts
SET title = COALESCE($2, title),
    slug = COALESCE($3, slug),
    excerpt = COALESCE($4, excerpt),
    content = COALESCE($5, content),
    featured_image = COALESCE($6, featured_image),
    is_published = COALESCE($7, is_published),
    published_at = COALESCE($8, published_at),
    category_id = COALESCE($9, category_id),
    author_id = COALESCE($10::uuid, author_id),
    tags = COALESCE($11::jsonb, tags),
    read_time = COALESCE($12, read_time),
    seo_title = COALESCE($13, seo_title),
    seo_description = COALESCE($14, seo_description),
    updated_at = now()
WHERE id = $1
RETURNING ` + postColumns + `
`
	out, err := scanPost(r.pool.QueryRow(ctx, q, id,
		p.Title, p.Slug, p.Excerpt, p.Content, p.FeaturedImage, p.IsPublished,
		p.PublishedAt, p.CategoryID, p.AuthorID, tagsPatchJSON(p.Tags), p.ReadTime,
		p.SEOTitle, p.SEODescription,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("post repo: update id=%d error=%v", id, err)
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("post repo: delete id=%d error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func tagsJSON(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func tagsPatchJSON(tags *[]string) *string {
	if tags == nil {
		return nil
	}
	s := tagsJSON(*tags)
	return &s
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
