package services

import (
	"context"
	"time"

	"github.com/taskhive/taskhive_backend/internal/core/domain"
	"github.com/taskhive/taskhive_backend/internal/dto"
)

// UserReaderSvc defines read operations on user accounts. GetUserByID is the
// profile lookup the task view assembler uses to resolve assignee snapshots.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations on user accounts.
type UserWriterSvc interface {
	// CreateUser registers a new local account with a hashed password.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// FindOrCreateGoogleUser resolves a Google-authenticated principal to a
	// local user record, creating one on first login.
	FindOrCreateGoogleUser(ctx context.Context, providerUserID, email, name string) (*domain.User, error)

	// DeleteUser soft-deletes the user's own account and invalidates the
	// stored refresh token.
	DeleteUser(ctx context.Context, userID string) error
}

// RefreshTokenSvc defines operations on stored refresh token state.
type RefreshTokenSvc interface {
	// StoreRefreshToken persists the hash and expiry of an issued refresh token.
	StoreRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	RefreshTokenSvc
}
