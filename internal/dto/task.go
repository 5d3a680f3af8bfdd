package dto

import (
	"time"

	"github.com/taskhive/taskhive_backend/internal/core/domain"
)

// CreateTaskRequest defines data for creating a task.
type CreateTaskRequest struct {
	WorkspaceID string            `json:"workspaceId" binding:"required"`
	ProjectID   string            `json:"projectId" binding:"required"`
	AssigneeID  string            `json:"assigneeId" binding:"required"`
	Name        string            `json:"name" binding:"required,min=1,max=256"`
	Description *string           `json:"description,omitempty"`
	Status      domain.TaskStatus `json:"status" binding:"required,oneof=BACKLOG TODO IN_PROGRESS IN_REVIEW DONE"`
	DueDate     *time.Time        `json:"dueDate,omitempty"`
}

// UpdateTaskRequest defines a partial task update. Every field is optional;
// absent fields are left untouched. Changing Status re-slots the task at the
// head of the destination column.
type UpdateTaskRequest struct {
	Name        *string            `json:"name,omitempty" binding:"omitempty,min=1,max=256"`
	Description *string            `json:"description,omitempty"`
	Status      *domain.TaskStatus `json:"status,omitempty" binding:"omitempty,oneof=BACKLOG TODO IN_PROGRESS IN_REVIEW DONE"`
	ProjectID   *string            `json:"projectId,omitempty"`
	AssigneeID  *string            `json:"assigneeId,omitempty"`
	DueDate     *time.Time         `json:"dueDate,omitempty"`
}

// ListTasksParams defines the filters accepted when listing tasks.
// WorkspaceID is mandatory; everything else narrows the result set.
type ListTasksParams struct {
	WorkspaceID string             `form:"workspaceId" binding:"required"`
	ProjectID   *string            `form:"projectId"`
	AssigneeID  *string            `form:"assigneeId"`
	Status      *domain.TaskStatus `form:"status" binding:"omitempty,oneof=BACKLOG TODO IN_PROGRESS IN_REVIEW DONE"`
	DueDate     *time.Time         `form:"dueDate" time_format:"2006-01-02"`
	Search      *string            `form:"search"`
	Limit       int                `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	NextToken   *string            `form:"nextToken"`
}

// TaskResponse defines the task representation returned to clients, with the
// project and assignee joined in where they could be resolved.
type TaskResponse struct {
	TaskID      string            `json:"taskId"`
	WorkspaceID string            `json:"workspaceId"`
	ProjectID   string            `json:"projectId"`
	AssigneeID  string            `json:"assigneeId"`
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	Status      domain.TaskStatus `json:"status"`
	DueDate     *time.Time        `json:"dueDate,omitempty"`
	Position    int               `json:"position"`
	Project     *ProjectResponse  `json:"project,omitempty"`
	Assignee    *MemberResponse   `json:"assignee,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ListTasksResult carries one page of populated tasks plus the cursor for the
// next page, if any.
type ListTasksResult struct {
	Tasks     []domain.PopulatedTask
	NextToken *string
}

// ListTasksResponse wraps a task page for the API.
type ListTasksResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToTaskResponse maps a populated task to its API representation.
func ToTaskResponse(t *domain.PopulatedTask) TaskResponse {
	resp := TaskResponse{
		TaskID:      t.TaskID,
		WorkspaceID: t.WorkspaceID,
		ProjectID:   t.ProjectID,
		AssigneeID:  t.AssigneeID,
		Name:        t.Name,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     t.DueDate,
		Position:    t.Position,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.LastUpdatedAt,
	}
	if t.Project != nil {
		p := ToProjectResponse(t.Project)
		resp.Project = &p
	}
	if t.Assignee != nil {
		a := ToMemberResponse(t.Assignee)
		resp.Assignee = &a
	}
	return resp
}

// ToListTasksResponse maps a service page result to the API shape.
func ToListTasksResponse(result *ListTasksResult) ListTasksResponse {
	tasks := make([]TaskResponse, 0, len(result.Tasks))
	for i := range result.Tasks {
		tasks = append(tasks, ToTaskResponse(&result.Tasks[i]))
	}
	return ListTasksResponse{Tasks: tasks, NextToken: result.NextToken}
}
