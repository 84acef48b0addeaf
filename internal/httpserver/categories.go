package httpserver

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"agency-cms/internal/domain"
	categorysvc "agency-cms/internal/service/category"
	"github.com/gin-gonic/gin"
)

type categoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int) (*domain.Category, error)
	Create(ctx context.Context, in categorysvc.CreateInput) (*domain.Category, error)
	Update(ctx context.Context, id int, in categorysvc.UpdateInput) (*domain.Category, error)
	Delete(ctx context.Context, id int) error
}

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Slug        string `json:"slug" binding:"required,max=100"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"omitempty,max=7"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Slug        *string `json:"slug" binding:"omitempty,max=100"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,max=7"`
}

func listCategoriesHandler(svc categoryService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.List(c.Request.Context())
		if err != nil {
			logger.Printf("list categories: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to fetch categories")
			return
		}
		if categories == nil {
			categories = []domain.Category{}
		}
		c.JSON(http.StatusOK, categories)
	}
}

func getCategoryHandler(svc categoryService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id", "Invalid category id")
		if !ok {
			return
		}
		category, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, logger, err, "Category not found", "Category already exists", "Failed to fetch category")
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func createCategoryHandler(svc categoryService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindingError(c, err, "Invalid category data")
			return
		}
		category, err := svc.Create(c.Request.Context(), categorysvc.CreateInput{
			Name:        req.Name,
			Slug:        req.Slug,
			Description: req.Description,
			Color:       req.Color,
		})
		if err != nil {
			respondServiceError(c, logger, err, "Category not found", "Category already exists", "Failed to create category")
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func updateCategoryHandler(svc categoryService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id", "Invalid category id")
		if !ok {
			return
		}
		var req updateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindingError(c, err, "Invalid category data")
			return
		}
		category, err := svc.Update(c.Request.Context(), id, categorysvc.UpdateInput{
			Name:        req.Name,
			Slug:        req.Slug,
			Description: req.Description,
			Color:       req.Color,
		})
		if err != nil {
			respondServiceError(c, logger, err, "Category not found", "Category already exists", "Failed to update category")
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func deleteCategoryHandler(svc categoryService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id", "Invalid category id")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondServiceError(c, logger, err, "Category not found", "Category already exists", "Failed to delete category")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// pathID parses a numeric path parameter, rejecting malformed values with a
// 400 instead of letting them surface as server errors.
func pathID(c *gin.Context, name, invalidMsg string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, invalidMsg)
		return 0, false
	}
	return id, true
}
