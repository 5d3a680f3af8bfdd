package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskhive/taskhive_backend/internal/apperrors"
	"github.com/taskhive/taskhive_backend/internal/core/domain"
	portsrepo "github.com/taskhive/taskhive_backend/internal/core/ports/repositories"
	"github.com/taskhive/taskhive_backend/internal/models"
	"github.com/taskhive/taskhive_backend/internal/utils/mapping"
	"github.com/taskhive/taskhive_backend/internal/utils/pagination"
)

type PgxTaskRepository struct {
	db *pgxpool.Pool
}

func newPgxTaskRepository(db *pgxpool.Pool) portsrepo.TaskRepositoryFacade {
	return &PgxTaskRepository{db: db}
}

var _ portsrepo.TaskRepositoryFacade = (*PgxTaskRepository)(nil)

const taskColumns = `task_id, workspace_id, project_id, assignee_id, name, description,
	status, due_date, position, created_at, created_by, last_updated_at, last_updated_by`

func scanTask(row pgx.Row) (*models.Task, error) {
	var m models.Task
	err := row.Scan(
		&m.TaskID,
		&m.WorkspaceID,
		&m.ProjectID,
		&m.AssigneeID,
		&m.Name,
		&m.Description,
		&m.Status,
		&m.DueDate,
		&m.Position,
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

func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	m := mapping.ToModelTask(task)
	query := `
        INSERT INTO tasks (task_id, workspace_id, project_id, assignee_id, name, description,
            status, due_date, position, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.db.Exec(ctx, query,
		m.TaskID,
		m.WorkspaceID,
		m.ProjectID,
		m.AssigneeID,
		m.Name,
		m.Description,
		m.Status,
		m.DueDate,
		m.Position,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE task_id = $1;`, taskColumns)
	m, err := scanTask(r.db.QueryRow(ctx, query, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task by ID %s: %w", taskID, err)
	}
	d := mapping.ToDomainTask(*m)
	return &d, nil
}

// taskListOrderBy fixes the listing order: newest first, with task_id as the
// tie-break so rows sharing a creation timestamp (bulk imports, tasks parked
// at the same board position) always list in the same order. The cursor
// predicate in buildListTasksQuery walks this same (created_at, task_id)
// ordering.
const taskListOrderBy = "ORDER BY created_at DESC, task_id DESC"

// buildListTasksQuery assembles the SQL and arguments for one page of the
// task listing. Nil filter fields are omitted from the WHERE clause entirely.
// One row beyond the limit is requested so the caller can tell whether a next
// page exists.
func buildListTasksQuery(filter portsrepo.TaskFilter, limit int, nextToken *string) (string, []interface{}, error) {
	conditions := []string{"workspace_id = $1"}
	args := []interface{}{filter.WorkspaceID}

	addCondition := func(cond string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.ProjectID != nil {
		addCondition("project_id = $%d", *filter.ProjectID)
	}
	if filter.AssigneeID != nil {
		addCondition("assignee_id = $%d", *filter.AssigneeID)
	}
	if filter.Status != nil {
		addCondition("status = $%d", string(*filter.Status))
	}
	if filter.DueDate != nil {
		addCondition("due_date = $%d", *filter.DueDate)
	}
	if filter.Search != nil {
		addCondition("name ILIKE $%d", "%"+*filter.Search+"%")
	}

	if nextToken != nil && *nextToken != "" {
		cursorCreatedAt, cursorID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return "", nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		args = append(args, cursorCreatedAt, cursorID)
		conditions = append(conditions, fmt.Sprintf("(created_at < $%d OR (created_at = $%d AND task_id < $%d))",
			len(args)-1, len(args)-1, len(args)))
	}

	args = append(args, limit+1)
	query := fmt.Sprintf(`
        SELECT %s FROM tasks
        WHERE %s
        %s
        LIMIT $%d;
    `, taskColumns, strings.Join(conditions, " AND "), taskListOrderBy, len(args))

	return query, args, nil
}

// ListTasks retrieves one page of tasks matching the filter, in the fixed
// listing order described on taskListOrderBy.
func (r *PgxTaskRepository) ListTasks(ctx context.Context, filter portsrepo.TaskFilter, limit int, nextToken *string) ([]domain.Task, *string, error) {
	if limit <= 0 {
		limit = 50
	}

	query, args, err := buildListTasksQuery(filter, limit, nextToken)
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var ms []models.Task
	for rows.Next() {
		m, err := scanTask(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	// Fetched one extra row to know whether a next page exists.
	var newToken *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TaskID)
		newToken = &token
	}

	return mapping.ToDomainTaskSlice(ms), newToken, nil
}

// FindLowestPosition returns the smallest position in the (workspace,
// status) partition, or nil when the partition is empty. New and moved
// tasks allocate relative to this value.
func (r *PgxTaskRepository) FindLowestPosition(ctx context.Context, workspaceID string, status domain.TaskStatus) (*int, error) {
	query := `
        SELECT position FROM tasks
        WHERE workspace_id = $1 AND status = $2
        ORDER BY position ASC
        LIMIT 1;
    `
	var position int
	err := r.db.QueryRow(ctx, query, workspaceID, string(status)).Scan(&position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find lowest position in workspace %s status %s: %w", workspaceID, status, err)
	}
	return &position, nil
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	m := mapping.ToModelTask(task)
	query := `
        UPDATE tasks
        SET project_id = $2, assignee_id = $3, name = $4, description = $5,
            status = $6, due_date = $7, position = $8, last_updated_at = $9, last_updated_by = $10
        WHERE task_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.TaskID,
		m.ProjectID,
		m.AssigneeID,
		m.Name,
		m.Description,
		m.Status,
		m.DueDate,
		m.Position,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update task %s: %w", task.TaskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	query := `DELETE FROM tasks WHERE task_id = $1;`
	tag, err := r.db.Exec(ctx, query, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
