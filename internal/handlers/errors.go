package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhive/taskhive_backend/internal/apperrors"
	"github.com/taskhive/taskhive_backend/internal/middleware"
)

// ErrorResponse is the generic error body returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError translates service-layer errors into HTTP responses.
// Authorization failures always map to 403 so resource existence is never
// disclosed to non-members.
func respondWithError(c *gin.Context, err error, fallbackMsg string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token expired"})
	case errors.Is(err, apperrors.ErrInvalidInviteCode):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid invite code"})
	case errors.Is(err, apperrors.ErrAlreadyMember):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Already a member of this workspace"})
	case errors.As(err, &appErr):
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Resource already exists"})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallbackMsg})
	}
}
