package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/taskhive/taskhive_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(dbPool),
		WorkspaceRepo: newPgxWorkspaceRepository(dbPool),
		MemberRepo:    newPgxMemberRepository(dbPool),
		ProjectRepo:   newPgxProjectRepository(dbPool),
		TaskRepo:      newPgxTaskRepository(dbPool),
	}
}
