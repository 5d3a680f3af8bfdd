package services

import (
	"context"

	"github.com/taskhive/taskhive_backend/internal/core/domain"
	"github.com/taskhive/taskhive_backend/internal/dto"
)

// TaskReaderSvc defines read operations for task data
type TaskReaderSvc interface {
	// ListTasks retrieves a filtered page of tasks as populated views.
	// Requires membership of the filtered workspace.
	ListTasks(ctx context.Context, requestingUserID string, params dto.ListTasksParams) (*dto.ListTasksResult, error)

	// GetTask retrieves a single task as a populated view. Requires
	// membership of its workspace.
	GetTask(ctx context.Context, requestingUserID, taskID string) (*domain.PopulatedTask, error)
}

// TaskWriterSvc defines write operations for task data
type TaskWriterSvc interface {
	// CreateTask persists a new task, computing its position at the head of
	// the (workspace, status) partition. Requires membership.
	CreateTask(ctx context.Context, creatorUserID string, req dto.CreateTaskRequest) (*domain.Task, error)

	// UpdateTask applies a partial patch. A status change re-inserts the
	// task at the head of the destination partition. Requires membership.
	UpdateTask(ctx context.Context, requestingUserID, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error)

	// DeleteTask removes a task. Requires membership.
	DeleteTask(ctx context.Context, requestingUserID, taskID string) error
}

// TaskSvcFacade combines all task service interfaces
type TaskSvcFacade interface {
	TaskReaderSvc
	TaskWriterSvc
}
