package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/lemonstand/internal/domain/dto"
	"github.com/guttosm/lemonstand/internal/domain/models"
)

// ErrorHandler turns the last error attached with c.Error into a JSON response
// when the handler did not write one itself.
//
// Status mapping:
//   - models.ErrInvalidSalesItem: 422 Unprocessable Entity.
//   - models.ErrDayOutOfRange: 404 Not Found.
//   - context deadline or cancellation: 503 Service Unavailable.
//   - anything else: 500 Internal Server Error.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	status, message := classify(err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}

// AbortWithError stops the chain and writes a dto.ErrorResponse with the given status.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrInvalidSalesItem):
		return http.StatusUnprocessableEntity, "invalid sales"
	case errors.Is(err, models.ErrDayOutOfRange):
		return http.StatusNotFound, "day not recorded"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "request timed out"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
