package user

import (
	"context"
	"fmt"
	"strings"

	"agency-cms/internal/domain"
	userrepo "agency-cms/internal/repository/user"
	"golang.org/x/crypto/bcrypt"
)

// Service manages site users. Passwords are stored as bcrypt hashes; real
// authentication and authorization are a separate concern and not part of
// this API.
type Service struct {
	repo userrepo.Repository
}

func New(repo userrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Password) == "" {
		return nil, fmt.Errorf("%w: password required", domain.ErrInvalidInput)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.User{
		Username:     username,
		PasswordHash: string(hashed),
		Email:        strings.TrimSpace(strings.ToLower(in.Email)),
		Role:         in.Role,
	})
}

func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.GetByUsername(ctx, username)
}
