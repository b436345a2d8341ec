package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sygpress/sygpress-api/internal/constants"
	"github.com/sygpress/sygpress-api/internal/middleware"
	"github.com/sygpress/sygpress-api/internal/services"
	"go.uber.org/zap"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// ListResponse wraps a page of items
type ListResponse struct {
	Object string      `json:"object"`
	Data   interface{} `json:"data"`
}

// sendError logs the failure with the request's correlation id and writes
// {"error": message}.
func sendError(c *gin.Context, log *zap.Logger, statusCode int, message string, err error) {
	fields := []zap.Field{
		zap.String("correlation_id", middleware.GetCorrelationID(c)),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", statusCode),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
		_ = c.Error(err)
	}
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, fields...)
	} else {
		log.Warn(message, fields...)
	}
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleServiceError maps the service error taxonomy onto HTTP statuses.
func handleServiceError(c *gin.Context, log *zap.Logger, err error) {
	var (
		validationErr *services.ValidationError
		notFoundErr   *services.NotFoundError
		conflictErr   *services.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		sendError(c, log, http.StatusBadRequest, validationErr.Error(), err)
	case errors.As(err, &notFoundErr):
		sendError(c, log, http.StatusNotFound, notFoundErr.Error(), err)
	case errors.As(err, &conflictErr):
		sendError(c, log, http.StatusConflict, conflictErr.Error(), err)
	case services.IsIntegrity(err):
		sendError(c, log, http.StatusInternalServerError, "Stored data is inconsistent", err)
	default:
		sendError(c, log, http.StatusInternalServerError, "Internal server error", err)
	}
}

func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, SuccessResponse{Message: message})
}

func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, ListResponse{Object: "list", Data: items})
}

// parseUUIDParam reads a path parameter as a UUID, answering 400 when it
// is not one.
func parseUUIDParam(c *gin.Context, log *zap.Logger, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		sendError(c, log, http.StatusBadRequest, "Invalid "+strings.ReplaceAll(name, "_", " ")+" format", err)
		return uuid.Nil, false
	}
	return id, true
}

// actor is who the request says it acts for; the SYSTEM user otherwise.
func actor(c *gin.Context) string {
	if user := strings.TrimSpace(c.GetHeader(constants.UserHeader)); user != "" {
		return user
	}
	return constants.SystemUser
}
