package models

import (
	"database/sql"
	"time"
)

// User is the persisted shape of a user account row.
type User struct {
	UserID         string         `db:"user_id"`
	Name           string         `db:"name"`
	Email          string         `db:"email"`
	PasswordHash   sql.NullString `db:"password_hash"` // NULL for external-provider accounts
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
