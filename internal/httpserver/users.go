package httpserver

import (
	"context"
	"log"
	"net/http"

	"agency-cms/internal/domain"
	"github.com/gin-gonic/gin"
)

type userService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
}

func getUserHandler(svc userService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, logger, err, "User not found", "User already exists", "Failed to fetch user")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
