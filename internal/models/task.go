package models

import (
	"database/sql"
)

// Task is the persisted shape of a task row.
type Task struct {
	TaskID      string         `db:"task_id"`
	WorkspaceID string         `db:"workspace_id"`
	ProjectID   string         `db:"project_id"`
	AssigneeID  string         `db:"assignee_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	DueDate     sql.NullTime   `db:"due_date"`
	Position    int            `db:"position"`
	AuditFields
}
