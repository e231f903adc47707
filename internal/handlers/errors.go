package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/forex_marketplace/internal/apperrors"
	"github.com/SscSPs/forex_marketplace/internal/dto"
	"github.com/SscSPs/forex_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError writes the error body for err. Internal failures are logged with their cause
// and answered with fallback; known kinds return their own message.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind, status := apperrors.Kind(err)

	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: kind, Message: fallback})
		return
	}

	msg := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		msg = appErr.Message
	}
	logger.Warn("Request failed", slog.String("kind", kind), slog.String("error", err.Error()))
	c.JSON(status, dto.ErrorResponse{Error: kind, Message: msg})
}

// respondBindError answers a request whose body or query failed binding.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "VALIDATION", Message: "Invalid request format: " + err.Error()})
}

// requireUserID reads the authenticated caller. AuthMiddleware guarantees it on protected routes.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "UNAUTHORIZED", Message: "Unauthorized"})
		return "", false
	}
	return userID, true
}
