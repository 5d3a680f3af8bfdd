package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive_backend/internal/apperrors"
	"github.com/taskhive/taskhive_backend/internal/core/domain"
	portsrepo "github.com/taskhive/taskhive_backend/internal/core/ports/repositories"
	portssvc "github.com/taskhive/taskhive_backend/internal/core/ports/services"
	"github.com/taskhive/taskhive_backend/internal/dto"
	"github.com/taskhive/taskhive_backend/internal/utils"
)

// UserService handles identity accounts: local registration, Google account
// linking, profile reads and refresh token state.
type UserService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(ur portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{userRepo: ur}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// GetUserByID retrieves a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", userID))
		}
		s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		s.LogError(ctx, err, "Failed to find user by email")
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// CreateUser registers a new local account. The email must not already be in
// use; the password is stored as a bcrypt hash only.
func (s *UserService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		s.LogWarn(ctx, "Registration attempted with existing email")
		return nil, apperrors.NewConflictError("email already registered")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check email uniqueness")
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	newUserID := uuid.NewString()
	user := domain.User{
		UserID:       newUserID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &passwordHash,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("email already registered")
		}
		s.LogError(ctx, err, "Failed to save user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", newUserID))
	return &user, nil
}

// FindOrCreateGoogleUser resolves a Google-authenticated principal to a local
// user record. Lookup order: provider subject id, then email (an existing
// local account with the same email gets the Google identity linked), then a
// fresh account.
func (s *UserService) FindOrCreateGoogleUser(ctx context.Context, providerUserID, email, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, string(domain.ProviderGoogle), providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by provider details")
		return nil, fmt.Errorf("failed to look up user by provider details: %w", err)
	}

	user, err = s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		// Link the Google identity onto the existing account.
		user.AuthProvider = domain.ProviderGoogle
		user.ProviderUserID = &providerUserID
		user.LastUpdatedAt = time.Now()
		user.LastUpdatedBy = user.UserID
		if updErr := s.userRepo.UpdateUser(ctx, *user); updErr != nil {
			s.LogError(ctx, updErr, "Failed to link Google identity", slog.String("user_id", user.UserID))
			return nil, fmt.Errorf("failed to link Google identity: %w", updErr)
		}
		s.LogInfo(ctx, "Linked Google identity to existing account", slog.String("user_id", user.UserID))
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by email")
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	now := time.Now()
	newUserID := uuid.NewString()
	newUser := domain.User{
		UserID:         newUserID,
		Name:           name,
		Email:          email,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: &providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to create Google user")
		return nil, fmt.Errorf("failed to create user from Google profile: %w", err)
	}

	s.LogInfo(ctx, "User created from Google profile", slog.String("user_id", newUserID))
	return &newUser, nil
}

// DeleteUser soft-deletes the user's own account. The row stays in place so
// historical references (task assignees, member rosters) keep resolving to a
// blank profile; the partial unique index on email only covers live rows, so
// the address can be registered again. The stored refresh token is cleared in
// the same statement, ending any outstanding session.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", userID))
		}
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	s.LogInfo(ctx, "User account deleted", slog.String("user_id", userID))
	return nil
}

// StoreRefreshToken persists the hash and expiry of an issued refresh token.
func (s *UserService) StoreRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiryTime time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, expiryTime); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token", slog.String("user_id", userID))
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// ClearRefreshToken removes the stored refresh token (logout).
func (s *UserService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token", slog.String("user_id", userID))
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}
