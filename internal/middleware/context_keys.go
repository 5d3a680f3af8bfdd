package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// contextKey is a private type for context keys defined by this package.
// Using a custom type prevents collisions with other packages.
type contextKey string

const (
	// loggerCtxKey is the key under which the request-scoped logger is
	// stored in the request context.
	loggerCtxKey = contextKey("logger")
	// userIDKey is the key under which the authenticated user's ID is
	// stored in the request context.
	userIDKey = contextKey("userID")
)

// GetLoggerFromCtx retrieves the request-scoped logger from the context.
// It falls back to slog.Default when no logger was injected, so callers
// can always log safely.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetUserIDFromContext retrieves the authenticated user ID set by
// AuthMiddleware. It returns the user ID and whether it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, ok := c.Request.Context().Value(userIDKey).(string); ok && userID != "" {
		return userID, true
	}
	return "", false
}
