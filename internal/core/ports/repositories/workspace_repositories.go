package repositories

import (
	"context"

	"github.com/taskhive/taskhive_backend/internal/core/domain"
)

// WorkspaceReader defines read operations for workspace data
type WorkspaceReader interface {
	// FindWorkspaceByID retrieves a specific workspace by its ID.
	FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error)

	// ListWorkspacesByUserID retrieves all workspaces the user is a member
	// of, newest first.
	ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error)
}

// WorkspaceWriter defines write operations for workspace data
type WorkspaceWriter interface {
	// SaveWorkspace persists a new workspace.
	SaveWorkspace(ctx context.Context, workspace domain.Workspace) error

	// UpdateWorkspace updates name and image of a workspace.
	UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error

	// UpdateInviteCode replaces the workspace's invite code. The previous
	// code is invalid the moment this returns.
	UpdateInviteCode(ctx context.Context, workspaceID, newCode, updatedByUserID string) error

	// DeleteWorkspace removes the workspace document. Child projects, tasks
	// and members are NOT cascade-deleted.
	DeleteWorkspace(ctx context.Context, workspaceID string) error
}

// WorkspaceRepositoryFacade combines all workspace-related repository interfaces
type WorkspaceRepositoryFacade interface {
	WorkspaceReader
	WorkspaceWriter
}
