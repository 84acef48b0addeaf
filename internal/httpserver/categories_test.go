package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"agency-cms/internal/domain"
)

func TestListCategories_Empty(t *testing.T) {
	router := testRouter(Deps{CategorySvc: &stubCategoryService{}})

	rec := doRequest(t, router, http.MethodGet, "/api/categories", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty JSON array, got %s", rec.Body.String())
	}
}

func TestCreateCategory_Created(t *testing.T) {
	router := testRouter(Deps{CategorySvc: &stubCategoryService{
		category: &domain.Category{ID: 1, Name: "Tech", Slug: "tech", Color: "#8b5cf6"},
	}})

	body := `{"name":"Tech","slug":"tech"}`
	rec := doRequest(t, router, http.MethodPost, "/api/categories", body)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"slug":"tech"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCreateCategory_MissingFields(t *testing.T) {
	router := testRouter(Deps{CategorySvc: &stubCategoryService{}})

	rec := doRequest(t, router, http.MethodPost, "/api/categories", `{"description":"only"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Error   string `json:"error"`
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error != "Invalid category data" {
		t.Fatalf("unexpected error %q", resp.Error)
	}
	if len(resp.Details) != 2 {
		t.Fatalf("expected name and slug in details, got %+v", resp.Details)
	}
}

func TestCreateCategory_DuplicateConflict(t *testing.T) {
	router := testRouter(Deps{CategorySvc: &stubCategoryService{err: domain.ErrAlreadyExists}})

	rec := doRequest(t, router, http.MethodPost, "/api/categories", `{"name":"Tech","slug":"tech"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestUpdateCategory_ForwardsPartialFields(t *testing.T) {
	svc := &stubCategoryService{category: &domain.Category{ID: 2, Name: "Renamed", Slug: "tech"}}
	router := testRouter(Deps{CategorySvc: svc})

	rec := doRequest(t, router, http.MethodPut, "/api/categories/2", `{"name":"Renamed"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if svc.lastUpdate.Name == nil || *svc.lastUpdate.Name != "Renamed" {
		t.Fatalf("expected name forwarded, got %+v", svc.lastUpdate)
	}
	if svc.lastUpdate.Slug != nil || svc.lastUpdate.Description != nil || svc.lastUpdate.Color != nil {
		t.Fatalf("expected untouched fields to stay nil, got %+v", svc.lastUpdate)
	}
}

func TestUpdateCategory_NotFound(t *testing.T) {
	router := testRouter(Deps{CategorySvc: &stubCategoryService{err: domain.ErrNotFound}})

	rec := doRequest(t, router, http.MethodPut, "/api/categories/77", `{"name":"X"}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Category not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestDeleteCategory_Success(t *testing.T) {
	router := testRouter(Deps{CategorySvc: &stubCategoryService{}})

	rec := doRequest(t, router, http.MethodDelete, "/api/categories/3", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestDeleteCategory_InvalidID(t *testing.T) {
	router := testRouter(Deps{CategorySvc: &stubCategoryService{}})

	rec := doRequest(t, router, http.MethodDelete, "/api/categories/zero", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
