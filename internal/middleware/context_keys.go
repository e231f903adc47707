package middleware

import (
	"context"
	"log/slog"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID.
const userIDKey = contextKey("userID")

// roleKey is the key used to store the authenticated user's role.
const roleKey = contextKey("role")

// withIdentity stores the caller identity in both the gin and the request context
// and adds the user id to the request logger.
func withIdentity(c *gin.Context, userID string, role domain.UserRole) {
	c.Set(string(userIDKey), userID)
	c.Set(string(roleKey), role)

	ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
	ctx = context.WithValue(ctx, roleKey, role)
	ctx = WithLogger(ctx, GetLoggerFromCtx(ctx).With(slog.String("user_id", userID)))
	c.Request = c.Request.WithContext(ctx)
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok && userID != ""
	}
	// check in the request context as well
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetRoleFromContext retrieves the authenticated user's role.
func GetRoleFromContext(c *gin.Context) (domain.UserRole, bool) {
	if v, exists := c.Get(string(roleKey)); exists {
		role, ok := v.(domain.UserRole)
		return role, ok
	}
	role, ok := c.Request.Context().Value(roleKey).(domain.UserRole)
	return role, ok
}
