package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/taskhive/taskhive_backend/internal/core/ports/services"
	"github.com/taskhive/taskhive_backend/internal/dto"
	"github.com/taskhive/taskhive_backend/internal/middleware"
)

// projectHandler handles HTTP requests related to projects.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{projectService: ps}
}

// registerProjectRoutes registers project routes. Listing filters on the
// workspaceId query parameter rather than nesting under /workspaces.
func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:project_id", h.getProject)
		projects.PATCH("/:project_id", h.updateProject)
		projects.DELETE("/:project_id", h.deleteProject)
	}
}

// createProject godoc
// @Summary Create a project
// @Description Creates a project in a workspace the caller is a member of.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// listProjects godoc
// @Summary List projects of a workspace
// @Description Retrieves the projects of the given workspace, newest first.
// @Tags projects
// @Produce json
// @Param workspaceId query string true "Workspace ID"
// @Success 200 {object} dto.ListProjectsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	workspaceID := c.Query("workspaceId")
	if workspaceID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "workspaceId query parameter is required"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), userID, workspaceID)
	if err != nil {
		respondWithError(c, err, "Failed to list projects")
		return
	}
	c.JSON(http.StatusOK, dto.ListProjectsResponse{Projects: dto.ToProjectResponses(projects)})
}

// getProject godoc
// @Summary Get a project
// @Description Retrieves a single project.
// @Tags projects
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), userID, c.Param("project_id"))
	if err != nil {
		respondWithError(c, err, "Failed to get project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// updateProject godoc
// @Summary Update a project
// @Description Applies a partial update to name/image.
// @Tags projects
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id} [patch]
func (h *projectHandler) updateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), userID, c.Param("project_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// deleteProject godoc
// @Summary Delete a project
// @Description Removes a project. Its tasks are not cascade-deleted.
// @Tags projects
// @Param project_id path string true "Project ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), userID, c.Param("project_id")); err != nil {
		respondWithError(c, err, "Failed to delete project")
		return
	}
	c.Status(http.StatusNoContent)
}
