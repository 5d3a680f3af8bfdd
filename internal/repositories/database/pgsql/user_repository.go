package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskhive/taskhive_backend/internal/apperrors"
	"github.com/taskhive/taskhive_backend/internal/core/domain"
	portsrepo "github.com/taskhive/taskhive_backend/internal/core/ports/repositories"
	"github.com/taskhive/taskhive_backend/internal/models"
	"github.com/taskhive/taskhive_backend/internal/utils/mapping"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, name, email, password_hash, auth_provider, provider_user_id,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at,
	refresh_token_hash, refresh_token_expiry_time`

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        INSERT INTO users (user_id, name, email, password_hash, auth_provider, provider_user_id,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.AuthProvider,
		m.ProviderUserID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("user already exists")
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE user_id = $1 AND deleted_at IS NULL;`, userColumns)
	m, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 AND deleted_at IS NULL;`, userColumns)
	m, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

func (r *PgxUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE auth_provider = $1 AND provider_user_id = $2 AND deleted_at IS NULL;`, userColumns)
	m, err := scanUser(r.db.QueryRow(ctx, query, authProvider, providerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by provider details: %w", err)
	}
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        UPDATE users
        SET name = $2, email = $3, auth_provider = $4, provider_user_id = $5,
            last_updated_at = $6, last_updated_by = $7
        WHERE user_id = $1 AND deleted_at IS NULL;
    `
	tag, err := r.db.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.Email,
		m.AuthProvider,
		m.ProviderUserID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error {
	query := `
        UPDATE users
        SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3,
            refresh_token_hash = NULL, refresh_token_expiry_time = NULL
        WHERE user_id = $1 AND deleted_at IS NULL;
    `
	tag, err := r.db.Exec(ctx, query, userID, deletedAt, deleterUserID)
	if err != nil {
		return fmt.Errorf("failed to mark user %s deleted: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	query := `
        UPDATE users
        SET refresh_token_hash = $2, refresh_token_expiry_time = $3
        WHERE user_id = $1 AND deleted_at IS NULL;
    `
	tag, err := r.db.Exec(ctx, query, userID, refreshTokenHash, refreshTokenExpiryTime)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `
        UPDATE users
        SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL
        WHERE user_id = $1 AND deleted_at IS NULL;
    `
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
