package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the services the routes depend on.
type Deps struct {
	CategorySvc categoryService
	PostSvc     postService
	UserSvc     userService
}

// buildRouter wires routes for the API. Every endpoint allows cross-origin
// requests from anywhere; the API itself carries no authentication.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	useJSONFieldNames()

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:    []string{"Content-Type"},
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.GET("/healthcheck", healthHandler)

	api.GET("/user/:id", getUserHandler(deps.UserSvc, logger))

	api.GET("/categories", listCategoriesHandler(deps.CategorySvc, logger))
	api.POST("/categories", createCategoryHandler(deps.CategorySvc, logger))
	api.GET("/categories/:id", getCategoryHandler(deps.CategorySvc, logger))
	api.PUT("/categories/:id", updateCategoryHandler(deps.CategorySvc, logger))
	api.DELETE("/categories/:id", deleteCategoryHandler(deps.CategorySvc, logger))

	blog := api.Group("/blog")
	blog.GET("/posts", listPostsHandler(deps.PostSvc, logger))
	blog.POST("/posts", createPostHandler(deps.PostSvc, logger))
	blog.GET("/posts/slug/:slug", getPostBySlugHandler(deps.PostSvc, logger))
	blog.GET("/posts/:id", getPostHandler(deps.PostSvc, logger))
	blog.PUT("/posts/:id", updatePostHandler(deps.PostSvc, logger))
	blog.DELETE("/posts/:id", deletePostHandler(deps.PostSvc, logger))
	blog.GET("/search", searchPostsHandler(deps.PostSvc, logger))
	blog.GET("/categories/:categoryId/posts", postsByCategoryHandler(deps.PostSvc, logger))

	return router
}
