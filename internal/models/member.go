package models

import "time"

// Member is the persisted shape of a workspace membership row.
type Member struct {
	MemberID    string    `db:"member_id"`
	WorkspaceID string    `db:"workspace_id"`
	UserID      string    `db:"user_id"`
	Role        string    `db:"role"`
	JoinedAt    time.Time `db:"joined_at"`
}
