package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/taskhive/taskhive_backend/internal/core/ports/services"
	"github.com/taskhive/taskhive_backend/internal/dto"
	"github.com/taskhive/taskhive_backend/internal/middleware"
)

// userHandler handles HTTP requests related to user accounts.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers user account routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getCurrentUser)
		users.DELETE("/me", h.deleteCurrentUser)
	}
}

// getCurrentUser godoc
// @Summary Get current user
// @Description Returns the authenticated user's profile.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getCurrentUser(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to load user profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deleteCurrentUser godoc
// @Summary Delete current user
// @Description Soft-deletes the authenticated user's account and ends the session.
// @Tags users
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [delete]
func (h *userHandler) deleteCurrentUser(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondWithError(c, err, "Failed to delete user account")
		return
	}
	c.Status(http.StatusNoContent)
}
