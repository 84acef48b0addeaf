package category

import (
	"context"
	"fmt"
	"strings"

	"agency-cms/internal/domain"
	"agency-cms/internal/repository/category"
)

// Service exposes category CRUD. Slugs are not derived here: the caller
// supplies them, and the store enforces name/slug uniqueness.
type Service struct {
	repo category.Repository
}

func New(repo category.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type UpdateInput struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Slug) == "" {
		return nil, fmt.Errorf("%w: slug required", domain.ErrInvalidInput)
	}
	return s.repo.Create(ctx, domain.Category{
		Name:        name,
		Slug:        in.Slug,
		Description: in.Description,
		Color:       in.Color,
	})
}

func (s *Service) Update(ctx context.Context, id int, in UpdateInput) (*domain.Category, error) {
	return s.repo.Update(ctx, id, category.Patch{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Color:       in.Color,
	})
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}
