package repositories

import (
	"context"
	"time"

	"github.com/taskhive/taskhive_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by its ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, the login identifier for
	// local accounts.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderDetails retrieves a user by external auth provider
	// and the provider's subject id.
	FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates mutable profile fields of a user.
	UpdateUser(ctx context.Context, user domain.User) error

	// MarkUserDeleted soft-deletes a user and invalidates the stored
	// refresh token in the same statement.
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error
}

// RefreshTokenWriter defines operations on a user's stored refresh token.
type RefreshTokenWriter interface {
	// UpdateRefreshToken stores the hash and expiry of a newly issued refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	RefreshTokenWriter
}
