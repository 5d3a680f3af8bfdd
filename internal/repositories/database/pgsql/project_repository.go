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

type PgxProjectRepository struct {
	db *pgxpool.Pool
}

func newPgxProjectRepository(db *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{db: db}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const projectColumns = `project_id, workspace_id, name, image_url,
	created_at, created_by, last_updated_at, last_updated_by`

func scanProject(row pgx.Row) (*models.Project, error) {
	var m models.Project
	err := row.Scan(
		&m.ProjectID,
		&m.WorkspaceID,
		&m.Name,
		&m.ImageURL,
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

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
        INSERT INTO projects (project_id, workspace_id, name, image_url,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		m.ProjectID,
		m.WorkspaceID,
		m.Name,
		m.ImageURL,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE project_id = $1;`, projectColumns)
	m, err := scanProject(r.db.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID %s: %w", projectID, err)
	}
	d := mapping.ToDomainProject(*m)
	return &d, nil
}

// FindProjectsByIDs loads projects for a set of ids in one query. Missing
// ids are simply absent from the result.
func (r *PgxProjectRepository) FindProjectsByIDs(ctx context.Context, projectIDs []string) ([]domain.Project, error) {
	if len(projectIDs) == 0 {
		return []domain.Project{}, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE project_id = ANY($1);`, projectColumns)
	rows, err := r.db.Query(ctx, query, projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find projects by IDs: %w", err)
	}
	defer rows.Close()

	var ms []models.Project
	for rows.Next() {
		m, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return mapping.ToDomainProjectSlice(ms), nil
}

func (r *PgxProjectRepository) ListProjectsByWorkspaceID(ctx context.Context, workspaceID string) ([]domain.Project, error) {
	query := fmt.Sprintf(`
        SELECT %s FROM projects
        WHERE workspace_id = $1
        ORDER BY created_at DESC;
    `, projectColumns)
	rows, err := r.db.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects of workspace %s: %w", workspaceID, err)
	}
	defer rows.Close()

	var ms []models.Project
	for rows.Next() {
		m, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return mapping.ToDomainProjectSlice(ms), nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
        UPDATE projects
        SET name = $2, image_url = $3, last_updated_at = $4, last_updated_by = $5
        WHERE project_id = $1;
    `
	tag, err := r.db.Exec(ctx, query, m.ProjectID, m.Name, m.ImageURL, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", project.ProjectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	query := `DELETE FROM projects WHERE project_id = $1;`
	tag, err := r.db.Exec(ctx, query, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
