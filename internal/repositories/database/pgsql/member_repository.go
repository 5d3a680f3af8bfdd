package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskhive/taskhive_backend/internal/apperrors"
	"github.com/taskhive/taskhive_backend/internal/core/domain"
	portsrepo "github.com/taskhive/taskhive_backend/internal/core/ports/repositories"
	"github.com/taskhive/taskhive_backend/internal/models"
	"github.com/taskhive/taskhive_backend/internal/utils/mapping"
)

type PgxMemberRepository struct {
	db *pgxpool.Pool
}

func newPgxMemberRepository(db *pgxpool.Pool) portsrepo.MemberRepositoryFacade {
	return &PgxMemberRepository{db: db}
}

var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

const memberColumns = `member_id, workspace_id, user_id, role, joined_at`

func scanMember(row pgx.Row) (*models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.MemberID,
		&m.WorkspaceID,
		&m.UserID,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
        INSERT INTO members (member_id, workspace_id, user_id, role, joined_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query, m.MemberID, m.WorkspaceID, m.UserID, m.Role, m.JoinedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("membership already exists")
		}
		return fmt.Errorf("failed to save member: %w", err)
	}
	return nil
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM members WHERE member_id = $1;`, memberColumns)
	m, err := scanMember(r.db.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by ID %s: %w", memberID, err)
	}
	d := mapping.ToDomainMember(*m)
	return &d, nil
}

// FindMemberByUserAndWorkspace returns the unique membership of a user in a
// workspace. Uniqueness of the pair is maintained by the write paths; if
// duplicates ever slip in, the newest row wins.
func (r *PgxMemberRepository) FindMemberByUserAndWorkspace(ctx context.Context, userID, workspaceID string) (*domain.Member, error) {
	query := fmt.Sprintf(`
        SELECT %s FROM members
        WHERE user_id = $1 AND workspace_id = $2
        ORDER BY joined_at DESC
        LIMIT 1;
    `, memberColumns)
	m, err := scanMember(r.db.QueryRow(ctx, query, userID, workspaceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member for user %s in workspace %s: %w", userID, workspaceID, err)
	}
	d := mapping.ToDomainMember(*m)
	return &d, nil
}

// FindMembersByIDs loads member records for a set of ids in one query.
// Missing ids are simply absent from the result.
func (r *PgxMemberRepository) FindMembersByIDs(ctx context.Context, memberIDs []string) ([]domain.Member, error) {
	if len(memberIDs) == 0 {
		return []domain.Member{}, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM members WHERE member_id = ANY($1);`, memberColumns)
	rows, err := r.db.Query(ctx, query, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find members by IDs: %w", err)
	}
	defer rows.Close()

	var ms []models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}
	return mapping.ToDomainMemberSlice(ms), nil
}

func (r *PgxMemberRepository) ListMembersByWorkspaceID(ctx context.Context, workspaceID string) ([]domain.Member, error) {
	query := fmt.Sprintf(`
        SELECT %s FROM members
        WHERE workspace_id = $1
        ORDER BY joined_at ASC;
    `, memberColumns)
	rows, err := r.db.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members of workspace %s: %w", workspaceID, err)
	}
	defer rows.Close()

	var ms []models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}
	return mapping.ToDomainMemberSlice(ms), nil
}

func (r *PgxMemberRepository) UpdateMemberRole(ctx context.Context, memberID string, role domain.MemberRole) error {
	query := `UPDATE members SET role = $2 WHERE member_id = $1;`
	tag, err := r.db.Exec(ctx, query, memberID, string(role))
	if err != nil {
		return fmt.Errorf("failed to update role of member %s: %w", memberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	query := `DELETE FROM members WHERE member_id = $1;`
	tag, err := r.db.Exec(ctx, query, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete member %s: %w", memberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
