package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agency-cms/internal/domain"
	categorysvc "agency-cms/internal/service/category"
	postsvc "agency-cms/internal/service/post"
	"github.com/gin-gonic/gin"
)

type stubCategoryService struct {
	categories []domain.Category
	category   *domain.Category
	err        error
	lastUpdate categorysvc.UpdateInput
}

func (s *stubCategoryService) List(context.Context) ([]domain.Category, error) {
	return s.categories, s.err
}

func (s *stubCategoryService) Get(context.Context, int) (*domain.Category, error) {
	return s.category, s.err
}

func (s *stubCategoryService) Create(_ context.Context, _ categorysvc.CreateInput) (*domain.Category, error) {
	return s.category, s.err
}

func (s *stubCategoryService) Update(_ context.Context, _ int, in categorysvc.UpdateInput) (*domain.Category, error) {
	s.lastUpdate = in
	return s.category, s.err
}

func (s *stubCategoryService) Delete(context.Context, int) error {
	return s.err
}

type stubPostService struct {
	posts         []domain.BlogPost
	post          *domain.BlogPost
	err           error
	lastPublished *bool
	publishedSet  bool
	lastQuery     string
	lastCreate    postsvc.CreateInput
}

func (s *stubPostService) List(_ context.Context, published *bool) ([]domain.BlogPost, error) {
	s.lastPublished = published
	s.publishedSet = true
	return s.posts, s.err
}

func (s *stubPostService) Get(context.Context, int) (*domain.BlogPost, error) {
	return s.post, s.err
}

func (s *stubPostService) GetBySlug(context.Context, string) (*domain.BlogPost, error) {
	return s.post, s.err
}

func (s *stubPostService) ListByCategory(context.Context, int) ([]domain.BlogPost, error) {
	return s.posts, s.err
}

func (s *stubPostService) Search(_ context.Context, query string) ([]domain.BlogPost, error) {
	s.lastQuery = query
	return s.posts, s.err
}

func (s *stubPostService) Create(_ context.Context, in postsvc.CreateInput) (*domain.BlogPost, error) {
	s.lastCreate = in
	return s.post, s.err
}

func (s *stubPostService) Update(_ context.Context, _ int, _ postsvc.UpdateInput) (*domain.BlogPost, error) {
	return s.post, s.err
}

func (s *stubPostService) Delete(context.Context, int) error {
	return s.err
}

type stubUserService struct {
	user *domain.User
	err  error
}

func (s *stubUserService) Get(context.Context, string) (*domain.User, error) {
	return s.user, s.err
}

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if deps.CategorySvc == nil {
		deps.CategorySvc = &stubCategoryService{}
	}
	if deps.PostSvc == nil {
		deps.PostSvc = &stubPostService{}
	}
	if deps.UserSvc == nil {
		deps.UserSvc = &stubUserService{}
	}
	return buildRouter(logDiscard(), nil, deps)
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthcheck(t *testing.T) {
	router := testRouter(Deps{})

	rec := doRequest(t, router, http.MethodGet, "/api/healthcheck", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCORSHeadersWideOpen(t *testing.T) {
	router := testRouter(Deps{})

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected Access-Control-Allow-Origin *, got %q", got)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	router := testRouter(Deps{UserSvc: &stubUserService{err: domain.ErrNotFound}})

	rec := doRequest(t, router, http.MethodGet, "/api/user/does-not-exist", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "User not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetUser_OmitsPasswordHash(t *testing.T) {
	router := testRouter(Deps{UserSvc: &stubUserService{
		user: &domain.User{ID: "u1", Username: "admin", PasswordHash: "secret-hash", Role: "admin"},
	}})

	rec := doRequest(t, router, http.MethodGet, "/api/user/u1", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret-hash") {
		t.Fatalf("password hash leaked in response: %s", rec.Body.String())
	}
}
