package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
	"github.com/SscSPs/contractor_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requestScope pulls the workplace and user a request acts on, writing the error response when either is missing.
func requestScope(c *gin.Context, logger *slog.Logger) (workplaceID, userID string, ok bool) {
	workplaceID = c.Param("workplace_id")
	if workplaceID == "" {
		logger.Error("Workplace ID missing from path")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Workplace ID required in path"})
		return "", "", false
	}

	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	return workplaceID, userID, true
}

// respondServiceError maps a service error onto a status code and writes it.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, failureMessage string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Rejected request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrInvalidStoredData):
		logger.Error("Stored records failed validation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMessage})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("User not authorized", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		logger.Error(failureMessage, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMessage})
	}
}
