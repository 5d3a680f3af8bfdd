package domain

// Project groups tasks inside a workspace. The workspace binding is
// immutable once set.
type Project struct {
	ProjectID   string  `json:"projectID"` // Primary Key (UUID)
	WorkspaceID string  `json:"workspaceID"`
	Name        string  `json:"name"`
	ImageURL    *string `json:"imageURL,omitempty"`
	AuditFields
}
