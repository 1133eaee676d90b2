package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tokentreat/treat-service/internal/api/shared/dto"
	"github.com/tokentreat/treat-service/internal/api/shared/errors"
	"github.com/tokentreat/treat-service/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errors.NewBadRequestError(message, details...)})
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: errors.NewNotFoundError(message, details...)})
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: errors.NewValidationError(message)})
}

// respondError maps a domain error to its response and logs the cause of server side failures
func respondError(c *gin.Context, err error, fallback string) {
	status, apiErr := errors.FromDomain(err, fallback)
	logCause(c, status, err)
	c.JSON(status, dto.ErrorResponse{Error: apiErr})
}

func logCause(c *gin.Context, status int, err error) {
	fields := []zap.Field{
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", status),
	}
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, fields...)
		return
	}
	logger.DebugCtx(c.Request.Context(), err.Error(), fields...)
}
