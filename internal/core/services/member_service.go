package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskhive/taskhive_backend/internal/apperrors"
	"github.com/taskhive/taskhive_backend/internal/core/domain"
	portsrepo "github.com/taskhive/taskhive_backend/internal/core/ports/repositories"
	portssvc "github.com/taskhive/taskhive_backend/internal/core/ports/services"
)

// MemberService handles membership resolution, authorization and roster
// administration. Resolution is the single authorization primitive: every
// workspace-scoped operation in the other services funnels through it.
type MemberService struct {
	BaseService
	memberRepo portsrepo.MemberRepositoryFacade
	userRepo   portsrepo.UserRepositoryFacade
}

// NewMemberService creates a new MemberService.
func NewMemberService(mr portsrepo.MemberRepositoryFacade, ur portsrepo.UserRepositoryFacade) *MemberService {
	s := &MemberService{
		memberRepo: mr,
		userRepo:   ur,
	}
	// The member service is its own authorizer.
	s.MemberAuthorizer = s
	return s
}

var _ portssvc.MemberSvcFacade = (*MemberService)(nil)

// Resolve returns the caller's membership in the workspace, or (nil, nil)
// when none exists. Absence is not an error here; callers decide whether it
// means Forbidden.
func (s *MemberService) Resolve(ctx context.Context, userID, workspaceID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByUserAndWorkspace(ctx, userID, workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to resolve membership", slog.String("user_id", userID), slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to resolve membership: %w", err)
	}
	return member, nil
}

// AuthorizeUserAction checks that userID holds at least requiredRole in the
// workspace. Non-members and under-privileged members both get ErrForbidden;
// the existence of the workspace is never disclosed through this path.
func (s *MemberService) AuthorizeUserAction(ctx context.Context, userID, workspaceID string, requiredRole domain.MemberRole) error {
	member, err := s.Resolve(ctx, userID, workspaceID)
	if err != nil {
		return err
	}
	if member == nil {
		s.LogWarn(ctx, "User is not a member of workspace", slog.String("user_id", userID), slog.String("workspace_id", workspaceID))
		return apperrors.ErrForbidden
	}
	if !domain.HasRequiredRole(member.Role, requiredRole) {
		s.LogWarn(ctx, "User role insufficient for action",
			slog.String("user_id", userID),
			slog.String("workspace_id", workspaceID),
			slog.String("role", string(member.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}
	return nil
}

// ListWorkspaceMembers returns the workspace roster enriched with user
// profiles. Any member may list the roster.
func (s *MemberService) ListWorkspaceMembers(ctx context.Context, requestingUserID, workspaceID string) ([]domain.MemberWithProfile, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListMembersByWorkspaceID(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspace members", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to list members of workspace %s: %w", workspaceID, err)
	}

	roster := make([]domain.MemberWithProfile, 0, len(members))
	for _, member := range members {
		enriched := domain.MemberWithProfile{Member: member}
		user, err := s.userRepo.FindUserByID(ctx, member.UserID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogError(ctx, err, "Failed to load member profile", slog.String("member_id", member.MemberID))
				return nil, fmt.Errorf("failed to load profile for member %s: %w", member.MemberID, err)
			}
			// Dangling user reference: keep the member row with a blank profile.
		} else {
			enriched.Name = user.Name
			enriched.Email = user.Email
		}
		roster = append(roster, enriched)
	}
	return roster, nil
}

// UpdateMemberRole changes a member's role. Only ADMINs of the workspace may
// do this. The member must belong to the named workspace; a mismatch gets the
// same NotFound as an absent member so the URL cannot be used to enumerate
// memberships of other workspaces.
func (s *MemberService) UpdateMemberRole(ctx context.Context, requestingUserID, workspaceID, memberID string, role domain.MemberRole) error {
	member, err := s.findMemberInWorkspace(ctx, workspaceID, memberID)
	if err != nil {
		return err
	}

	if err := s.AuthorizeUserAction(ctx, requestingUserID, member.WorkspaceID, domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.memberRepo.UpdateMemberRole(ctx, memberID, role); err != nil {
		s.LogError(ctx, err, "Failed to update member role", slog.String("member_id", memberID))
		return fmt.Errorf("failed to update role of member %s: %w", memberID, err)
	}

	s.LogInfo(ctx, "Member role updated", slog.String("member_id", memberID), slog.String("role", string(role)), slog.String("updated_by", requestingUserID))
	return nil
}

// findMemberInWorkspace loads a member and checks it belongs to the named
// workspace. A mismatch is reported as NotFound, identical to an absent
// member.
func (s *MemberService) findMemberInWorkspace(ctx context.Context, workspaceID, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("member %s not found", memberID))
		}
		s.LogError(ctx, err, "Failed to find member", slog.String("member_id", memberID))
		return nil, fmt.Errorf("failed to find member %s: %w", memberID, err)
	}
	if member.WorkspaceID != workspaceID {
		s.LogWarn(ctx, "Member does not belong to workspace", slog.String("member_id", memberID), slog.String("workspace_id", workspaceID))
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("member %s not found", memberID))
	}
	return member, nil
}

// RemoveMember removes a membership. ADMINs may remove anyone in their
// workspace; any member may remove themself (leave). Removing the last ADMIN
// is not prevented.
func (s *MemberService) RemoveMember(ctx context.Context, requestingUserID, workspaceID, memberID string) error {
	member, err := s.findMemberInWorkspace(ctx, workspaceID, memberID)
	if err != nil {
		return err
	}

	if member.UserID != requestingUserID {
		if err := s.AuthorizeUserAction(ctx, requestingUserID, member.WorkspaceID, domain.RoleAdmin); err != nil {
			return err
		}
	} else {
		// Self-removal still requires the caller to actually be that member,
		// which FindMemberByID just established.
		if err := s.AuthorizeUserAction(ctx, requestingUserID, member.WorkspaceID, domain.RoleMember); err != nil {
			return err
		}
	}

	if err := s.memberRepo.DeleteMember(ctx, memberID); err != nil {
		s.LogError(ctx, err, "Failed to remove member", slog.String("member_id", memberID))
		return fmt.Errorf("failed to remove member %s: %w", memberID, err)
	}

	s.LogInfo(ctx, "Member removed", slog.String("member_id", memberID), slog.String("workspace_id", member.WorkspaceID), slog.String("removed_by", requestingUserID))
	return nil
}
