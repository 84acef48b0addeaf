package httpserver

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strings"

	"agency-cms/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// respondBindingError maps a failed bind to a 400 with a structured list of
// field-level validation failures when available.
func respondBindingError(c *gin.Context, err error, msg string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fieldError{Field: fe.Field(), Message: validationMessage(fe)})
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg, "details": details})
		return
	}
	respondError(c, http.StatusBadRequest, msg)
}

// respondServiceError translates service failures into status codes. Internal
// detail is logged, never returned to the client.
func respondServiceError(c *gin.Context, logger *log.Logger, err error, notFoundMsg, conflictMsg, failMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrAlreadyExists):
		respondError(c, http.StatusConflict, conflictMsg)
	case errors.Is(err, domain.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		logger.Printf("%s: %v", failMsg, err)
		respondError(c, http.StatusInternalServerError, failMsg)
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	default:
		return "is invalid"
	}
}

// useJSONFieldNames makes validator errors report json tag names instead of
// Go struct field names.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
