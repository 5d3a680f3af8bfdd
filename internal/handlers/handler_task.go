package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/taskhive/taskhive_backend/internal/core/ports/services"
	"github.com/taskhive/taskhive_backend/internal/dto"
	"github.com/taskhive/taskhive_backend/internal/middleware"
)

// taskHandler handles HTTP requests related to tasks.
type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

func newTaskHandler(ts portssvc.TaskSvcFacade) *taskHandler {
	return &taskHandler{taskService: ts}
}

// registerTaskRoutes registers task routes. Listing is workspace-scoped via
// the workspaceId query parameter.
func registerTaskRoutes(rg *gin.RouterGroup, taskService portssvc.TaskSvcFacade) {
	h := newTaskHandler(taskService)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.createTask)
		tasks.GET("", h.listTasks)
		tasks.GET("/:task_id", h.getTask)
		tasks.PATCH("/:task_id", h.updateTask)
		tasks.DELETE("/:task_id", h.deleteTask)
	}
}

// createTask godoc
// @Summary Create a task
// @Description Creates a task; its board position is allocated automatically
// @Description within the (workspace, status) column.
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks [post]
func (h *taskHandler) createTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create task")
		return
	}

	populated, err := h.taskService.GetTask(c.Request.Context(), userID, task.TaskID)
	if err != nil {
		respondWithError(c, err, "Failed to load created task")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTaskResponse(populated))
}

// listTasks godoc
// @Summary List tasks
// @Description Retrieves a filtered page of tasks with project and assignee
// @Description joined in, newest first.
// @Tags tasks
// @Produce json
// @Param workspaceId query string true "Workspace ID"
// @Param projectId query string false "Filter by project"
// @Param assigneeId query string false "Filter by assignee member"
// @Param status query string false "Filter by status"
// @Param dueDate query string false "Filter by due date (YYYY-MM-DD)"
// @Param search query string false "Substring match on task name"
// @Param limit query int false "Page size (default 50)"
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListTasksResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks [get]
func (h *taskHandler) listTasks(c *gin.Context) {
	var params dto.ListTasksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.taskService.ListTasks(c.Request.Context(), userID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTasksResponse(result))
}

// getTask godoc
// @Summary Get a task
// @Description Retrieves a single task with project and assignee joined in.
// @Tags tasks
// @Produce json
// @Param task_id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/{task_id} [get]
func (h *taskHandler) getTask(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), userID, c.Param("task_id"))
	if err != nil {
		respondWithError(c, err, "Failed to get task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// updateTask godoc
// @Summary Update a task
// @Description Applies a partial update. Changing the status re-slots the
// @Description task in the destination column.
// @Tags tasks
// @Accept json
// @Produce json
// @Param task_id path string true "Task ID"
// @Param task body dto.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/{task_id} [patch]
func (h *taskHandler) updateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	taskID := c.Param("task_id")
	if _, err := h.taskService.UpdateTask(c.Request.Context(), userID, taskID, req); err != nil {
		respondWithError(c, err, "Failed to update task")
		return
	}

	populated, err := h.taskService.GetTask(c.Request.Context(), userID, taskID)
	if err != nil {
		respondWithError(c, err, "Failed to load updated task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(populated))
}

// deleteTask godoc
// @Summary Delete a task
// @Description Removes a task.
// @Tags tasks
// @Param task_id path string true "Task ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/{task_id} [delete]
func (h *taskHandler) deleteTask(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), userID, c.Param("task_id")); err != nil {
		respondWithError(c, err, "Failed to delete task")
		return
	}
	c.Status(http.StatusNoContent)
}
