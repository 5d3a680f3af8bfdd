package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhive/taskhive_backend/internal/core/domain"
	portssvc "github.com/taskhive/taskhive_backend/internal/core/ports/services"
	"github.com/taskhive/taskhive_backend/internal/dto"
	"github.com/taskhive/taskhive_backend/internal/middleware"
)

// workspaceHandler handles HTTP requests related to workspaces.
type workspaceHandler struct {
	workspaceService portssvc.WorkspaceSvcFacade
	memberService    portssvc.MemberSvcFacade
}

func newWorkspaceHandler(ws portssvc.WorkspaceSvcFacade, ms portssvc.MemberSvcFacade) *workspaceHandler {
	return &workspaceHandler{
		workspaceService: ws,
		memberService:    ms,
	}
}

// registerWorkspaceRoutes registers workspace and invite code routes.
func registerWorkspaceRoutes(rg *gin.RouterGroup, workspaceService portssvc.WorkspaceSvcFacade, memberService portssvc.MemberSvcFacade) {
	h := newWorkspaceHandler(workspaceService, memberService)

	workspaces := rg.Group("/workspaces")
	{
		workspaces.POST("", h.createWorkspace)
		workspaces.GET("", h.listUserWorkspaces)
	}

	single := rg.Group("/workspaces/:workspace_id")
	{
		single.GET("", h.getWorkspace)
		single.PATCH("", h.updateWorkspace)
		single.DELETE("", h.deleteWorkspace)
		single.POST("/join", h.joinWorkspace)
		single.POST("/reset-invite-code", h.resetInviteCode)
		registerMemberRoutes(single, h.memberService)
	}
}

// createWorkspace godoc
// @Summary Create a new workspace
// @Description Creates a workspace with a fresh invite code and adds the
// @Description creator as its first ADMIN member.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace body dto.CreateWorkspaceRequest true "Workspace details"
// @Success 201 {object} dto.WorkspaceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces [post]
func (h *workspaceHandler) createWorkspace(c *gin.Context) {
	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	workspace, err := h.workspaceService.CreateWorkspace(c.Request.Context(), creatorUserID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create workspace")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkspaceAdminResponse(workspace))
}

// listUserWorkspaces godoc
// @Summary List workspaces for current user
// @Description Retrieves the workspaces the authenticated user is a member of.
// @Tags workspaces
// @Produce json
// @Success 200 {object} dto.ListWorkspacesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces [get]
func (h *workspaceHandler) listUserWorkspaces(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	workspaces, err := h.workspaceService.ListUserWorkspaces(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list workspaces")
		return
	}
	c.JSON(http.StatusOK, dto.ListWorkspacesResponse{Workspaces: dto.ToWorkspaceResponses(workspaces)})
}

// getWorkspace godoc
// @Summary Get a workspace
// @Description Retrieves a workspace. ADMIN members also see the invite code.
// @Tags workspaces
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [get]
func (h *workspaceHandler) getWorkspace(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	workspaceID := c.Param("workspace_id")

	workspace, err := h.workspaceService.GetWorkspace(c.Request.Context(), userID, workspaceID)
	if err != nil {
		respondWithError(c, err, "Failed to get workspace")
		return
	}

	member, err := h.memberService.Resolve(c.Request.Context(), userID, workspaceID)
	if err == nil && member != nil && member.Role == domain.RoleAdmin {
		c.JSON(http.StatusOK, dto.ToWorkspaceAdminResponse(workspace))
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// updateWorkspace godoc
// @Summary Update a workspace
// @Description Applies a partial update to name/image. ADMIN only.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param workspace body dto.UpdateWorkspaceRequest true "Fields to update"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [patch]
func (h *workspaceHandler) updateWorkspace(c *gin.Context) {
	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	workspace, err := h.workspaceService.UpdateWorkspace(c.Request.Context(), userID, c.Param("workspace_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceAdminResponse(workspace))
}

// deleteWorkspace godoc
// @Summary Delete a workspace
// @Description Removes the workspace. ADMIN only. Child projects, tasks and
// @Description members are not cascade-deleted.
// @Tags workspaces
// @Param workspace_id path string true "Workspace ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [delete]
func (h *workspaceHandler) deleteWorkspace(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.workspaceService.DeleteWorkspace(c.Request.Context(), userID, c.Param("workspace_id")); err != nil {
		respondWithError(c, err, "Failed to delete workspace")
		return
	}
	c.Status(http.StatusNoContent)
}

// joinWorkspace godoc
// @Summary Join a workspace with an invite code
// @Description Redeems an invite code into a MEMBER-role membership.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param join body dto.JoinWorkspaceRequest true "Invite code"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse "Invalid invite code"
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already a member"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/join [post]
func (h *workspaceHandler) joinWorkspace(c *gin.Context) {
	var req dto.JoinWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	member, err := h.workspaceService.JoinWorkspace(c.Request.Context(), userID, c.Param("workspace_id"), req.InviteCode)
	if err != nil {
		respondWithError(c, err, "Failed to join workspace")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMemberResponse(&domain.MemberWithProfile{Member: *member}))
}

// resetInviteCode godoc
// @Summary Reset the workspace invite code
// @Description Rotates the invite code. ADMIN only; the previous code stops
// @Description working immediately.
// @Tags workspaces
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/reset-invite-code [post]
func (h *workspaceHandler) resetInviteCode(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	newCode, err := h.workspaceService.ResetInviteCode(c.Request.Context(), userID, c.Param("workspace_id"))
	if err != nil {
		respondWithError(c, err, "Failed to reset invite code")
		return
	}
	c.JSON(http.StatusOK, gin.H{"inviteCode": newCode})
}
