package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"agency-cms/internal/domain"
	postsvc "agency-cms/internal/service/post"
	"github.com/gin-gonic/gin"
)

type postService interface {
	List(ctx context.Context, published *bool) ([]domain.BlogPost, error)
	Get(ctx context.Context, id int) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	ListByCategory(ctx context.Context, categoryID int) ([]domain.BlogPost, error)
	Search(ctx context.Context, query string) ([]domain.BlogPost, error)
	Create(ctx context.Context, in postsvc.CreateInput) (*domain.BlogPost, error)
	Update(ctx context.Context, id int, in postsvc.UpdateInput) (*domain.BlogPost, error)
	Delete(ctx context.Context, id int) error
}

type createPostRequest struct {
	Title          string     `json:"title" binding:"required,max=255"`
	Slug           string     `json:"slug" binding:"omitempty,max=255"`
	Excerpt        string     `json:"excerpt"`
	Content        string     `json:"content" binding:"required"`
	FeaturedImage  string     `json:"featuredImage"`
	IsPublished    bool       `json:"isPublished"`
	PublishedAt    *time.Time `json:"publishedAt"`
	CategoryID     *int       `json:"categoryId"`
	AuthorID       string     `json:"authorId"`
	Tags           []string   `json:"tags"`
	ReadTime       string     `json:"readTime" binding:"omitempty,max=20"`
	SEOTitle       string     `json:"seoTitle" binding:"omitempty,max=255"`
	SEODescription string     `json:"seoDescription"`
}

type updatePostRequest struct {
	Title          *string    `json:"title" binding:"omitempty,max=255"`
	Slug           *string    `json:"slug" binding:"omitempty,max=255"`
	Excerpt        *string    `json:"excerpt"`
	Content        *string    `json:"content"`
	FeaturedImage  *string    `json:"featuredImage"`
	IsPublished    *bool      `json:"isPublished"`
	PublishedAt    *time.Time `json:"publishedAt"`
	CategoryID     *int       `json:"categoryId"`
	AuthorID       *string    `json:"authorId"`
	Tags           *[]string  `json:"tags"`
	ReadTime       *string    `json:"readTime" binding:"omitempty,max=20"`
	SEOTitle       *string    `json:"seoTitle" binding:"omitempty,max=255"`
	SEODescription *string    `json:"seoDescription"`
}

func listPostsHandler(svc postService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := svc.List(c.Request.Context(), publishedFilter(c))
		if err != nil {
			logger.Printf("list posts: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to fetch blog posts")
			return
		}
		respondPosts(c, posts)
	}
}

func getPostHandler(svc postService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id", "Invalid blog post id")
		if !ok {
			return
		}
		post, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, logger, err, "Blog post not found", "Blog post slug already exists", "Failed to fetch blog post")
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

func getPostBySlugHandler(svc postService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondServiceError(c, logger, err, "Blog post not found", "Blog post slug already exists", "Failed to fetch blog post")
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

func createPostHandler(svc postService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindingError(c, err, "Invalid blog post data")
			return
		}
		post, err := svc.Create(c.Request.Context(), postsvc.CreateInput{
			Title:          req.Title,
			Slug:           req.Slug,
			Excerpt:        req.Excerpt,
			Content:        req.Content,
			FeaturedImage:  req.FeaturedImage,
			IsPublished:    req.IsPublished,
			PublishedAt:    req.PublishedAt,
			CategoryID:     req.CategoryID,
			AuthorID:       req.AuthorID,
			Tags:           req.Tags,
			ReadTime:       req.ReadTime,
			SEOTitle:       req.SEOTitle,
			SEODescription: req.SEODescription,
		})
		if err != nil {
			respondServiceError(c, logger, err, "Blog post not found", "Blog post slug already exists", "Failed to create blog post")
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

func updatePostHandler(svc postService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id", "Invalid blog post id")
		if !ok {
			return
		}
		var req updatePostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindingError(c, err, "Invalid blog post data")
			return
		}
		post, err := svc.Update(c.Request.Context(), id, postsvc.UpdateInput{
			Title:          req.Title,
			Slug:           req.Slug,
			Excerpt:        req.Excerpt,
			Content:        req.Content,
			FeaturedImage:  req.FeaturedImage,
			IsPublished:    req.IsPublished,
			PublishedAt:    req.PublishedAt,
			CategoryID:     req.CategoryID,
			AuthorID:       req.AuthorID,
			Tags:           req.Tags,
			ReadTime:       req.ReadTime,
			SEOTitle:       req.SEOTitle,
			SEODescription: req.SEODescription,
		})
		if err != nil {
			respondServiceError(c, logger, err, "Blog post not found", "Blog post slug already exists", "Failed to update blog post")
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

func deletePostHandler(svc postService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id", "Invalid blog post id")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondServiceError(c, logger, err, "Blog post not found", "Blog post slug already exists", "Failed to delete blog post")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func searchPostsHandler(svc postService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			respondError(c, http.StatusBadRequest, "Search query is required")
			return
		}
		posts, err := svc.Search(c.Request.Context(), query)
		if err != nil {
			logger.Printf("search posts: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to search blog posts")
			return
		}
		respondPosts(c, posts)
	}
}

func postsByCategoryHandler(svc postService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, ok := pathID(c, "categoryId", "Invalid category id")
		if !ok {
			return
		}
		posts, err := svc.ListByCategory(c.Request.Context(), categoryID)
		if err != nil {
			logger.Printf("posts by category: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to fetch posts by category")
			return
		}
		respondPosts(c, posts)
	}
}

// publishedFilter parses the optional ?published=true|false query parameter.
// Any other value means no filtering.
func publishedFilter(c *gin.Context) *bool {
	switch c.Query("published") {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}

func respondPosts(c *gin.Context, posts []domain.BlogPost) {
	if posts == nil {
		posts = []domain.BlogPost{}
	}
	c.JSON(http.StatusOK, posts)
}
