package services

import (
	"context"

	"github.com/taskhive/taskhive_backend/internal/core/domain"
	"github.com/taskhive/taskhive_backend/internal/dto"
)

// WorkspaceReaderSvc defines read operations for workspace data
type WorkspaceReaderSvc interface {
	// ListUserWorkspaces retrieves workspaces the user is a member of.
	ListUserWorkspaces(ctx context.Context, userID string) ([]domain.Workspace, error)

	// GetWorkspace retrieves a workspace; the requesting user must be a member.
	GetWorkspace(ctx context.Context, requestingUserID, workspaceID string) (*domain.Workspace, error)
}

// WorkspaceWriterSvc defines write operations for workspace data
type WorkspaceWriterSvc interface {
	// CreateWorkspace persists a new workspace and adds the creator as its
	// first ADMIN member. The two writes are sequential and not atomic.
	CreateWorkspace(ctx context.Context, creatorUserID string, req dto.CreateWorkspaceRequest) (*domain.Workspace, error)

	// UpdateWorkspace updates name/image. ADMIN only.
	UpdateWorkspace(ctx context.Context, requestingUserID, workspaceID string, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error)

	// DeleteWorkspace removes a workspace. ADMIN only. Children are not
	// cascade-deleted.
	DeleteWorkspace(ctx context.Context, requestingUserID, workspaceID string) error
}

// WorkspaceInviteSvc defines invite code issuance and redemption.
type WorkspaceInviteSvc interface {
	// JoinWorkspace redeems an invite code into a MEMBER-role membership.
	// Fails with apperrors.ErrInvalidInviteCode on code mismatch and
	// apperrors.ErrAlreadyMember when a membership already exists.
	JoinWorkspace(ctx context.Context, userID, workspaceID, inviteCode string) (*domain.Member, error)

	// ResetInviteCode rotates the invite code. ADMIN only; the previous code
	// is invalidated immediately.
	ResetInviteCode(ctx context.Context, requestingUserID, workspaceID string) (string, error)
}

// WorkspaceSvcFacade combines all workspace-related service interfaces
type WorkspaceSvcFacade interface {
	WorkspaceReaderSvc
	WorkspaceWriterSvc
	WorkspaceInviteSvc
}
