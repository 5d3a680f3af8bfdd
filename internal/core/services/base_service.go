package services

import (
	"context"
	"log/slog"

	"github.com/taskhive/taskhive_backend/internal/core/domain"
	portssvc "github.com/taskhive/taskhive_backend/internal/core/ports/services"
	"github.com/taskhive/taskhive_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	MemberAuthorizer portssvc.MemberAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// AuthorizeUser checks whether a user holds the required role in a workspace.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, workspaceID string, requiredRole domain.MemberRole) error {
	return s.MemberAuthorizer.AuthorizeUserAction(ctx, userID, workspaceID, requiredRole)
}
