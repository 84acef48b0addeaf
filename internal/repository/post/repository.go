package post

import (
	"context"
	"time"

	"agency-cms/internal/domain"
)

// Patch carries partial updates for a blog post; nil fields are left
// untouched. updated_at is refreshed by the store on every update.
type Patch struct {
	Title          *string
	Slug           *string
	Excerpt        *string
	Content        *string
	FeaturedImage  *string
	IsPublished    *bool
	PublishedAt    *time.Time
	CategoryID     *int
	AuthorID       *string
	Tags           *[]string
	ReadTime       *string
	SEOTitle       *string
	SEODescription *string
}

type Repository interface {
	// List returns all posts ordered by created_at descending. A non-nil
	// published filters on exact is_published match.
	List(ctx context.Context, published *bool) ([]domain.BlogPost, error)
	GetByID(ctx context.Context, id int) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	// ListByCategory returns published posts in the category ordered by
	// published_at descending.
	ListByCategory(ctx context.Context, categoryID int) ([]domain.BlogPost, error)
	// Search returns published posts whose title or content contains the
	// query case-insensitively, ordered by published_at descending.
	Search(ctx context.Context, query string) ([]domain.BlogPost, error)
	Create(ctx context.Context, p domain.BlogPost) (*domain.BlogPost, error)
	Update(ctx context.Context, id int, p Patch) (*domain.BlogPost, error)
	Delete(ctx context.Context, id int) error
}
