package repositories

import (
	"context"

	"github.com/taskhive/taskhive_backend/internal/core/domain"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// FindProjectByID retrieves a specific project by its ID.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// FindProjectsByIDs retrieves projects for a set of IDs in a single
	// batched query. Missing IDs are simply absent from the result.
	FindProjectsByIDs(ctx context.Context, projectIDs []string) ([]domain.Project, error)

	// ListProjectsByWorkspaceID retrieves all projects of a workspace,
	// newest first.
	ListProjectsByWorkspaceID(ctx context.Context, workspaceID string) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	// SaveProject persists a new project.
	SaveProject(ctx context.Context, project domain.Project) error

	// UpdateProject updates name and image of a project. The workspace
	// binding is immutable and never written.
	UpdateProject(ctx context.Context, project domain.Project) error

	// DeleteProject removes the project document. Tasks referencing it are
	// NOT cascade-deleted.
	DeleteProject(ctx context.Context, projectID string) error
}

// ProjectRepositoryFacade combines all project repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
