package category

import (
	"context"

	"agency-cms/internal/domain"
)

// Patch carries partial updates; nil fields are left untouched.
type Patch struct {
	Name        *string
	Slug        *string
	Description *string
	Color       *string
}

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id int, p Patch) (*domain.Category, error)
	Delete(ctx context.Context, id int) error
}
