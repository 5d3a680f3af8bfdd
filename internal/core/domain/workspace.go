package domain

// Workspace is the top-level tenant container for projects, tasks and members.
type Workspace struct {
	WorkspaceID string  `json:"workspaceID"` // Primary Key (UUID)
	Name        string  `json:"name"`
	OwnerUserID string  `json:"ownerUserID"`        // UserID of the creator
	ImageURL    *string `json:"imageURL,omitempty"` // Optional workspace image
	InviteCode  string  `json:"-"`                  // Workspace-scoped join secret, rotatable
	AuditFields
}
