package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/taskhive/taskhive_backend/internal/core/ports/services"
	"github.com/taskhive/taskhive_backend/internal/dto"
	"github.com/taskhive/taskhive_backend/internal/middleware"
)

// memberHandler handles HTTP requests related to workspace memberships.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: ms}
}

// registerMemberRoutes registers the member roster routes under a specific
// workspace group.
func registerMemberRoutes(workspaceGroup *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	members := workspaceGroup.Group("/members")
	{
		members.GET("", h.listMembers)
		members.PATCH("/:member_id", h.updateMemberRole)
		members.DELETE("/:member_id", h.removeMember)
	}
}

// listMembers godoc
// @Summary List workspace members
// @Description Retrieves the workspace roster with user profiles.
// @Tags members
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.ListMembersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	members, err := h.memberService.ListWorkspaceMembers(c.Request.Context(), userID, c.Param("workspace_id"))
	if err != nil {
		respondWithError(c, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, dto.ListMembersResponse{Members: dto.ToMemberResponses(members)})
}

// updateMemberRole godoc
// @Summary Change a member's role
// @Description Updates the role of a workspace member. ADMIN only.
// @Tags members
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param member_id path string true "Member ID"
// @Param role body dto.UpdateMemberRoleRequest true "New role"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members/{member_id} [patch]
func (h *memberHandler) updateMemberRole(c *gin.Context) {
	var req dto.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.memberService.UpdateMemberRole(c.Request.Context(), userID, c.Param("workspace_id"), c.Param("member_id"), req.Role); err != nil {
		respondWithError(c, err, "Failed to update member role")
		return
	}
	c.Status(http.StatusNoContent)
}

// removeMember godoc
// @Summary Remove a member
// @Description Removes a membership. ADMIN, or the member removing themself.
// @Tags members
// @Param workspace_id path string true "Workspace ID"
// @Param member_id path string true "Member ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members/{member_id} [delete]
func (h *memberHandler) removeMember(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.memberService.RemoveMember(c.Request.Context(), userID, c.Param("workspace_id"), c.Param("member_id")); err != nil {
		respondWithError(c, err, "Failed to remove member")
		return
	}
	c.Status(http.StatusNoContent)
}
