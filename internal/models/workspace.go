package models

// Workspace is the persisted shape of a workspace row.
type Workspace struct {
	WorkspaceID string  `db:"workspace_id"`
	Name        string  `db:"name"`
	OwnerUserID string  `db:"owner_user_id"`
	ImageURL    *string `db:"image_url"`
	InviteCode  string  `db:"invite_code"`
	AuditFields
}
