package post

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agency-cms/internal/domain"
	postrepo "agency-cms/internal/repository/post"
	"agency-cms/internal/slug"
	"github.com/microcosm-cc/bluemonday"
)

const wordsPerMinute = 200

type postRepo interface {
	List(ctx context.Context, published *bool) ([]domain.BlogPost, error)
	GetByID(ctx context.Context, id int) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	ListByCategory(ctx context.Context, categoryID int) ([]domain.BlogPost, error)
	Search(ctx context.Context, query string) ([]domain.BlogPost, error)
	Create(ctx context.Context, p domain.BlogPost) (*domain.BlogPost, error)
	Update(ctx context.Context, id int, p postrepo.Patch) (*domain.BlogPost, error)
	Delete(ctx context.Context, id int) error
}

// Service implements the blog post lifecycle: slug and read-time derivation,
// publish-time stamping, content sanitization, and retrieval.
type Service struct {
	repo      postRepo
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

func New(repo postRepo) *Service {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Globally()
	return &Service{
		repo:      repo,
		sanitizer: policy,
		now:       time.Now,
	}
}

// CreateInput captures fields accepted when creating a post.
type CreateInput struct {
	Title          string     `json:"title"`
	Slug           string     `json:"slug"`
	Excerpt        string     `json:"excerpt"`
	Content        string     `json:"content"`
	FeaturedImage  string     `json:"featuredImage"`
	IsPublished    bool       `json:"isPublished"`
	PublishedAt    *time.Time `json:"publishedAt"`
	CategoryID     *int       `json:"categoryId"`
	AuthorID       string     `json:"authorId"`
	Tags           []string   `json:"tags"`
	ReadTime       string     `json:"readTime"`
	SEOTitle       string     `json:"seoTitle"`
	SEODescription string     `json:"seoDescription"`
}

// UpdateInput captures a partial update; nil fields are not touched.
type UpdateInput struct {
	Title          *string    `json:"title"`
	Slug           *string    `json:"slug"`
	Excerpt        *string    `json:"excerpt"`
	Content        *string    `json:"content"`
	FeaturedImage  *string    `json:"featuredImage"`
	IsPublished    *bool      `json:"isPublished"`
	PublishedAt    *time.Time `json:"publishedAt"`
	CategoryID     *int       `json:"categoryId"`
	AuthorID       *string    `json:"authorId"`
	Tags           *[]string  `json:"tags"`
	ReadTime       *string    `json:"readTime"`
	SEOTitle       *string    `json:"seoTitle"`
	SEODescription *string    `json:"seoDescription"`
}

// Create inserts a post. The slug is derived from the title when absent and
// the read time from the content; a post created as published without an
// explicit publishedAt is stamped with the current time.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.BlogPost, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("%w: content required", domain.ErrInvalidInput)
	}

	postSlug := strings.TrimSpace(in.Slug)
	if postSlug == "" {
		postSlug = slug.Make(title)
	}

	content := s.sanitizer.Sanitize(in.Content)
	readTime := in.ReadTime
	if readTime == "" {
		readTime = readTimeFor(content)
	}

	publishedAt := in.PublishedAt
	if in.IsPublished && publishedAt == nil {
		now := s.now().UTC()
		publishedAt = &now
	}

	return s.repo.Create(ctx, domain.BlogPost{
		Title:          title,
		Slug:           postSlug,
		Excerpt:        in.Excerpt,
		Content:        content,
		FeaturedImage:  in.FeaturedImage,
		IsPublished:    in.IsPublished,
		PublishedAt:    publishedAt,
		CategoryID:     in.CategoryID,
		AuthorID:       in.AuthorID,
		Tags:           in.Tags,
		ReadTime:       readTime,
		SEOTitle:       in.SEOTitle,
		SEODescription: in.SEODescription,
	})
}

// Update applies a partial update. When content is supplied the read time is
// recomputed; the slug is never re-derived, even if the title changes. A post
// transitioning to published without a publishedAt on record is stamped now.
func (s *Service) Update(ctx context.Context, id int, in UpdateInput) (*domain.BlogPost, error) {
	patch := postrepo.Patch{
		Title:          in.Title,
		Slug:           in.Slug,
		Excerpt:        in.Excerpt,
		FeaturedImage:  in.FeaturedImage,
		IsPublished:    in.IsPublished,
		PublishedAt:    in.PublishedAt,
		CategoryID:     in.CategoryID,
		AuthorID:       in.AuthorID,
		Tags:           in.Tags,
		ReadTime:       in.ReadTime,
		SEOTitle:       in.SEOTitle,
		SEODescription: in.SEODescription,
	}

	if in.Content != nil {
		content := s.sanitizer.Sanitize(*in.Content)
		readTime := readTimeFor(content)
		patch.Content = &content
		patch.ReadTime = &readTime
	}

	if in.IsPublished != nil && *in.IsPublished && in.PublishedAt == nil {
		existing, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing.PublishedAt == nil {
			now := s.now().UTC()
			patch.PublishedAt = &now
		}
	}

	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, published *bool) ([]domain.BlogPost, error) {
	return s.repo.List(ctx, published)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) ListByCategory(ctx context.Context, categoryID int) ([]domain.BlogPost, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}

func (s *Service) Search(ctx context.Context, query string) ([]domain.BlogPost, error) {
	return s.repo.Search(ctx, query)
}

// readTimeFor estimates reading time at 200 words per minute, one minute
// minimum, matching the "<N> min read" display format.
func readTimeFor(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
