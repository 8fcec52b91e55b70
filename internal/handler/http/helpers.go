package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	"github.com/mazboy1/frasa-backend/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Success: false, Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, dto.SuccessResponse{Success: true, Data: data})
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Success: true, Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// DomainError maps domain sentinel errors to their HTTP status; anything
// unrecognized is a 500 with the error detail in the body.
func DomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, err.Error())
	case errors.Is(err, entity.ErrInvalidID),
		errors.Is(err, entity.ErrInvalidStatus),
		errors.Is(err, entity.ErrAlreadyInCart),
		errors.Is(err, entity.ErrValidation):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
	}
}
