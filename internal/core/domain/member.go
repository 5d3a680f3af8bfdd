package domain

import "time"

// MemberRole defines the possible roles a user can have within a workspace.
type MemberRole string

const (
	RoleAdmin  MemberRole = "ADMIN"
	RoleMember MemberRole = "MEMBER"
)

// Member binds a user to a workspace with a role. It is the unit of
// authorization: every workspace-scoped operation resolves the caller's
// membership first. At most one member record exists per (workspace, user)
// pair; the resolver and invite redemption enforce this, not the store.
type Member struct {
	MemberID    string     `json:"memberID"` // Primary Key (UUID)
	WorkspaceID string     `json:"workspaceID"`
	UserID      string     `json:"userID"`
	Role        MemberRole `json:"role"`
	JoinedAt    time.Time  `json:"joinedAt"`
}

// MemberWithProfile is a member enriched with the user's display profile
// from the identity layer. Built on read, never persisted.
type MemberWithProfile struct {
	Member
	Name  string `json:"name"`
	Email string `json:"email"`
}

// HasRequiredRole reports whether role meets or exceeds requiredRole.
func HasRequiredRole(role, requiredRole MemberRole) bool {
	switch requiredRole {
	case RoleMember:
		return role == RoleMember || role == RoleAdmin
	case RoleAdmin:
		return role == RoleAdmin
	default:
		return false
	}
}
