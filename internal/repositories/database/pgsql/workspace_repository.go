package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskhive/taskhive_backend/internal/apperrors"
	"github.com/taskhive/taskhive_backend/internal/core/domain"
	portsrepo "github.com/taskhive/taskhive_backend/internal/core/ports/repositories"
	"github.com/taskhive/taskhive_backend/internal/models"
	"github.com/taskhive/taskhive_backend/internal/utils/mapping"
)

type PgxWorkspaceRepository struct {
	db *pgxpool.Pool
}

func newPgxWorkspaceRepository(db *pgxpool.Pool) portsrepo.WorkspaceRepositoryFacade {
	return &PgxWorkspaceRepository{db: db}
}

var _ portsrepo.WorkspaceRepositoryFacade = (*PgxWorkspaceRepository)(nil)

const workspaceColumns = `workspace_id, name, owner_user_id, image_url, invite_code,
	created_at, created_by, last_updated_at, last_updated_by`

func scanWorkspace(row pgx.Row) (*models.Workspace, error) {
	var m models.Workspace
	err := row.Scan(
		&m.WorkspaceID,
		&m.Name,
		&m.OwnerUserID,
		&m.ImageURL,
		&m.InviteCode,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	m := mapping.ToModelWorkspace(workspace)
	query := `
        INSERT INTO workspaces (workspace_id, name, owner_user_id, image_url, invite_code,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		m.WorkspaceID,
		m.Name,
		m.OwnerUserID,
		m.ImageURL,
		m.InviteCode,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save workspace: %w", err)
	}
	return nil
}

func (r *PgxWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	query := fmt.Sprintf(`SELECT %s FROM workspaces WHERE workspace_id = $1;`, workspaceColumns)
	m, err := scanWorkspace(r.db.QueryRow(ctx, query, workspaceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find workspace by ID %s: %w", workspaceID, err)
	}
	d := mapping.ToDomainWorkspace(*m)
	return &d, nil
}

// ListWorkspacesByUserID returns the workspaces the user holds a membership
// in, newest first.
func (r *PgxWorkspaceRepository) ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error) {
	query := `
        SELECT w.workspace_id, w.name, w.owner_user_id, w.image_url, w.invite_code,
            w.created_at, w.created_by, w.last_updated_at, w.last_updated_by
        FROM workspaces w
        JOIN members m ON m.workspace_id = w.workspace_id
        WHERE m.user_id = $1
        ORDER BY w.created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces for user %s: %w", userID, err)
	}
	defer rows.Close()

	var ms []models.Workspace
	for rows.Next() {
		m, err := scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workspace row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workspace rows: %w", err)
	}
	return mapping.ToDomainWorkspaceSlice(ms), nil
}

func (r *PgxWorkspaceRepository) UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error {
	m := mapping.ToModelWorkspace(workspace)
	query := `
        UPDATE workspaces
        SET name = $2, image_url = $3, last_updated_at = $4, last_updated_by = $5
        WHERE workspace_id = $1;
    `
	tag, err := r.db.Exec(ctx, query, m.WorkspaceID, m.Name, m.ImageURL, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update workspace %s: %w", workspace.WorkspaceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateInviteCode replaces the stored invite code. The old code stops
// matching the moment this commits.
func (r *PgxWorkspaceRepository) UpdateInviteCode(ctx context.Context, workspaceID, newCode, updatedByUserID string) error {
	query := `
        UPDATE workspaces
        SET invite_code = $2, last_updated_at = NOW(), last_updated_by = $3
        WHERE workspace_id = $1;
    `
	tag, err := r.db.Exec(ctx, query, workspaceID, newCode, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to update invite code for workspace %s: %w", workspaceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxWorkspaceRepository) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	query := `DELETE FROM workspaces WHERE workspace_id = $1;`
	tag, err := r.db.Exec(ctx, query, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to delete workspace %s: %w", workspaceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
