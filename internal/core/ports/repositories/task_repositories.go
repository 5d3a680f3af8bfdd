package repositories

import (
	"context"
	"time"

	"github.com/taskhive/taskhive_backend/internal/core/domain"
)

// TaskFilter describes the ANDed criteria of a task listing. Nil fields are
// omitted from the query, not matched as wildcards.
type TaskFilter struct {
	WorkspaceID string
	ProjectID   *string
	AssigneeID  *string
	Status      *domain.TaskStatus
	DueDate     *time.Time // exact match
	Search      *string    // substring match on name
}

// TaskReader defines read operations for task data
type TaskReader interface {
	// FindTaskByID retrieves a specific task by its ID.
	FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error)

	// ListTasks retrieves tasks matching the filter, sorted by creation time
	// descending (task id as tie-break), using token-based pagination.
	// It returns the tasks, a token for the next page, and an error.
	ListTasks(ctx context.Context, filter TaskFilter, limit int, nextToken *string) ([]domain.Task, *string, error)

	// FindLowestPosition returns the smallest position in the
	// (workspace, status) partition, or nil when the partition is empty.
	FindLowestPosition(ctx context.Context, workspaceID string, status domain.TaskStatus) (*int, error)
}

// TaskWriter defines write operations for task data
type TaskWriter interface {
	// SaveTask persists a new task.
	SaveTask(ctx context.Context, task domain.Task) error

	// UpdateTask persists the full current state of a task.
	UpdateTask(ctx context.Context, task domain.Task) error

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, taskID string) error
}

// TaskRepositoryFacade combines all task repository interfaces
type TaskRepositoryFacade interface {
	TaskReader
	TaskWriter
}
