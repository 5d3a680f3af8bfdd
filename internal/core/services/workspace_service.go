package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive_backend/internal/apperrors"
	"github.com/taskhive/taskhive_backend/internal/core/domain"
	portsrepo "github.com/taskhive/taskhive_backend/internal/core/ports/repositories"
	portssvc "github.com/taskhive/taskhive_backend/internal/core/ports/services"
	"github.com/taskhive/taskhive_backend/internal/dto"
	"github.com/taskhive/taskhive_backend/internal/utils"
)

// WorkspaceService handles workspace lifecycle and invite code flows.
type WorkspaceService struct {
	BaseService
	workspaceRepo    portsrepo.WorkspaceRepositoryFacade
	memberRepo       portsrepo.MemberRepositoryFacade
	memberResolver   portssvc.MemberResolverSvc
	inviteCodeLength int
}

// NewWorkspaceService creates a new WorkspaceService.
func NewWorkspaceService(wr portsrepo.WorkspaceRepositoryFacade, mr portsrepo.MemberRepositoryFacade, members portssvc.MemberSvcFacade, inviteCodeLength int) *WorkspaceService {
	s := &WorkspaceService{
		workspaceRepo:    wr,
		memberRepo:       mr,
		memberResolver:   members,
		inviteCodeLength: inviteCodeLength,
	}
	s.MemberAuthorizer = members
	return s
}

var _ portssvc.WorkspaceSvcFacade = (*WorkspaceService)(nil)

// ListUserWorkspaces retrieves the workspaces the user is a member of.
func (s *WorkspaceService) ListUserWorkspaces(ctx context.Context, userID string) ([]domain.Workspace, error) {
	workspaces, err := s.workspaceRepo.ListWorkspacesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspaces for user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list workspaces for user %s: %w", userID, err)
	}
	if workspaces == nil {
		return []domain.Workspace{}, nil
	}
	return workspaces, nil
}

// GetWorkspace retrieves a workspace. The requesting user must be a member;
// non-members get Forbidden regardless of whether the workspace exists.
func (s *WorkspaceService) GetWorkspace(ctx context.Context, requestingUserID, workspaceID string) (*domain.Workspace, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("workspace %s not found", workspaceID))
		}
		s.LogError(ctx, err, "Failed to find workspace", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to find workspace %s: %w", workspaceID, err)
	}
	return workspace, nil
}

// CreateWorkspace persists a new workspace with a fresh invite code and adds
// the creator as its first ADMIN member. The two writes are sequential; a
// crash between them leaves a workspace without members.
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, creatorUserID string, req dto.CreateWorkspaceRequest) (*domain.Workspace, error) {
	inviteCode, err := utils.GenerateInviteCode(s.inviteCodeLength)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate invite code")
		return nil, fmt.Errorf("failed to generate invite code: %w", err)
	}

	now := time.Now()
	workspace := domain.Workspace{
		WorkspaceID: uuid.NewString(),
		Name:        req.Name,
		OwnerUserID: creatorUserID,
		ImageURL:    req.ImageURL,
		InviteCode:  inviteCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.workspaceRepo.SaveWorkspace(ctx, workspace); err != nil {
		s.LogError(ctx, err, "Failed to save workspace", slog.String("workspace_name", req.Name))
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	membership := domain.Member{
		MemberID:    uuid.NewString(),
		WorkspaceID: workspace.WorkspaceID,
		UserID:      creatorUserID,
		Role:        domain.RoleAdmin,
		JoinedAt:    now,
	}
	if err := s.memberRepo.SaveMember(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add creator as admin to new workspace",
			slog.String("workspace_id", workspace.WorkspaceID), slog.String("user_id", creatorUserID))
		return nil, fmt.Errorf("failed to add creator membership: %w", err)
	}

	s.LogInfo(ctx, "Workspace created", slog.String("workspace_id", workspace.WorkspaceID), slog.String("creator_user_id", creatorUserID))
	return &workspace, nil
}

// UpdateWorkspace updates name/image. ADMIN only.
func (s *WorkspaceService) UpdateWorkspace(ctx context.Context, requestingUserID, workspaceID string, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("workspace %s not found", workspaceID))
		}
		s.LogError(ctx, err, "Failed to find workspace for update", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to find workspace %s: %w", workspaceID, err)
	}

	if req.Name != nil {
		workspace.Name = *req.Name
	}
	if req.ImageURL != nil {
		workspace.ImageURL = req.ImageURL
	}
	workspace.LastUpdatedAt = time.Now()
	workspace.LastUpdatedBy = requestingUserID

	if err := s.workspaceRepo.UpdateWorkspace(ctx, *workspace); err != nil {
		s.LogError(ctx, err, "Failed to update workspace", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to update workspace %s: %w", workspaceID, err)
	}

	s.LogInfo(ctx, "Workspace updated", slog.String("workspace_id", workspaceID))
	return workspace, nil
}

// DeleteWorkspace removes a workspace. ADMIN only. Projects, tasks and
// members of the workspace are not cascade-deleted.
func (s *WorkspaceService) DeleteWorkspace(ctx context.Context, requestingUserID, workspaceID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.workspaceRepo.DeleteWorkspace(ctx, workspaceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(fmt.Sprintf("workspace %s not found", workspaceID))
		}
		s.LogError(ctx, err, "Failed to delete workspace", slog.String("workspace_id", workspaceID))
		return fmt.Errorf("failed to delete workspace %s: %w", workspaceID, err)
	}

	s.LogInfo(ctx, "Workspace deleted", slog.String("workspace_id", workspaceID), slog.String("deleted_by", requestingUserID))
	return nil
}

// JoinWorkspace redeems an invite code into a MEMBER-role membership.
// Redemption always grants MEMBER; codes carry no role information. A stale
// code fails even if it was valid when the inviter shared it.
func (s *WorkspaceService) JoinWorkspace(ctx context.Context, userID, workspaceID, inviteCode string) (*domain.Member, error) {
	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("workspace %s not found", workspaceID))
		}
		s.LogError(ctx, err, "Failed to find workspace for join", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to find workspace %s: %w", workspaceID, err)
	}

	if workspace.InviteCode != inviteCode {
		s.LogWarn(ctx, "Invite code mismatch", slog.String("workspace_id", workspaceID), slog.String("user_id", userID))
		return nil, apperrors.ErrInvalidInviteCode
	}

	existing, err := s.memberResolver.Resolve(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyMember
	}

	membership := domain.Member{
		MemberID:    uuid.NewString(),
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        domain.RoleMember,
		JoinedAt:    time.Now(),
	}
	if err := s.memberRepo.SaveMember(ctx, membership); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrAlreadyMember
		}
		s.LogError(ctx, err, "Failed to save membership from invite", slog.String("workspace_id", workspaceID), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to join workspace %s: %w", workspaceID, err)
	}

	s.LogInfo(ctx, "User joined workspace via invite", slog.String("workspace_id", workspaceID), slog.String("user_id", userID))
	return &membership, nil
}

// ResetInviteCode rotates the workspace invite code. ADMIN only. The
// previous code is invalid the moment the new one is stored; outstanding
// copies of it are not tracked.
func (s *WorkspaceService) ResetInviteCode(ctx context.Context, requestingUserID, workspaceID string) (string, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleAdmin); err != nil {
		return "", err
	}

	newCode, err := utils.GenerateInviteCode(s.inviteCodeLength)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate replacement invite code")
		return "", fmt.Errorf("failed to generate invite code: %w", err)
	}

	if err := s.workspaceRepo.UpdateInviteCode(ctx, workspaceID, newCode, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewNotFoundError(fmt.Sprintf("workspace %s not found", workspaceID))
		}
		s.LogError(ctx, err, "Failed to store new invite code", slog.String("workspace_id", workspaceID))
		return "", fmt.Errorf("failed to reset invite code for workspace %s: %w", workspaceID, err)
	}

	s.LogInfo(ctx, "Invite code reset", slog.String("workspace_id", workspaceID), slog.String("reset_by", requestingUserID))
	return newCode, nil
}
