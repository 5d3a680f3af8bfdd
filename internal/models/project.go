package models

// Project is the persisted shape of a project row.
type Project struct {
	ProjectID   string  `db:"project_id"`
	WorkspaceID string  `db:"workspace_id"`
	Name        string  `db:"name"`
	ImageURL    *string `db:"image_url"`
	AuditFields
}
