package services

import (
	"context"

	"github.com/taskhive/taskhive_backend/internal/core/domain"
	"github.com/taskhive/taskhive_backend/internal/dto"
)

// ProjectReaderSvc defines read operations for project data
type ProjectReaderSvc interface {
	// ListProjects retrieves projects of a workspace. Requires membership.
	ListProjects(ctx context.Context, requestingUserID, workspaceID string) ([]domain.Project, error)

	// GetProject retrieves a project. Requires membership of its workspace.
	GetProject(ctx context.Context, requestingUserID, projectID string) (*domain.Project, error)
}

// ProjectWriterSvc defines write operations for project data
type ProjectWriterSvc interface {
	// CreateProject persists a new project. Requires membership.
	CreateProject(ctx context.Context, creatorUserID string, req dto.CreateProjectRequest) (*domain.Project, error)

	// UpdateProject updates name/image. Requires membership.
	UpdateProject(ctx context.Context, requestingUserID, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)

	// DeleteProject removes a project. Requires membership. Tasks are not
	// cascade-deleted.
	DeleteProject(ctx context.Context, requestingUserID, projectID string) error
}

// ProjectSvcFacade combines all project service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}
