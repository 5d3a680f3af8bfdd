package domain

import "time"

// TaskStatus is the kanban column a task sits in. Positions are only
// comparable between tasks sharing a (workspace, status) partition.
type TaskStatus string

const (
	StatusBacklog    TaskStatus = "BACKLOG"
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusInReview   TaskStatus = "IN_REVIEW"
	StatusDone       TaskStatus = "DONE"
)

// IsValid reports whether s is one of the defined task statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusBacklog, StatusTodo, StatusInProgress, StatusInReview, StatusDone:
		return true
	}
	return false
}

// Task is a unit of work inside a project, assigned to a workspace member.
type Task struct {
	TaskID      string     `json:"taskID"` // Primary Key (UUID)
	WorkspaceID string     `json:"workspaceID"`
	ProjectID   string     `json:"projectID"`
	AssigneeID  string     `json:"assigneeID"` // MemberID, not UserID
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Position    int        `json:"position"` // Gap-based ordering key within (workspace, status)
	AuditFields
}

// PopulatedTask is a task with its referenced project and assignee resolved.
// Project or Assignee is nil when the reference dangles (no cascade delete
// exists, so listings must tolerate that). Built on read, never written back.
type PopulatedTask struct {
	Task
	Project  *Project           `json:"project,omitempty"`
	Assignee *MemberWithProfile `json:"assignee,omitempty"`
}
