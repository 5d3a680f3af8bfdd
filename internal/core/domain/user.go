package domain

import "time"

// AuthProvider identifies how a user account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents an account held by the identity layer. Workspace
// membership references users by UserID; profile name and email are what the
// task view assembler embeds into assignee snapshots.
type User struct {
	UserID         string       `json:"userID"` // Primary Key (UUID)
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	PasswordHash   *string      `json:"-"` // nil for external-provider accounts
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID *string      `json:"-"` // Subject ID at the external provider
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete

	// Refresh token state (hash at rest, never the raw token)
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// GoogleUserInfo is the profile payload returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
