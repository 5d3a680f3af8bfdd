package services

import (
	"context"

	"github.com/taskhive/taskhive_backend/internal/core/domain"
)

// MemberResolverSvc is the single authorization primitive: it answers
// whether a principal holds a membership in a workspace.
type MemberResolverSvc interface {
	// Resolve returns the member record for (userID, workspaceID), or
	// (nil, nil) when no membership exists. Absence is an expected outcome,
	// not an error; callers translate it into an authorization failure.
	Resolve(ctx context.Context, userID, workspaceID string) (*domain.Member, error)
}

// MemberAuthorizerSvc checks membership and role thresholds on top of the
// resolver. The resolver itself stays capability-neutral.
type MemberAuthorizerSvc interface {
	// AuthorizeUserAction returns apperrors.ErrForbidden when the user is
	// not a member of the workspace or holds a role below requiredRole.
	AuthorizeUserAction(ctx context.Context, userID, workspaceID string, requiredRole domain.MemberRole) error
}

// MemberAdminSvc defines membership administration operations.
type MemberAdminSvc interface {
	// ListWorkspaceMembers retrieves the members of a workspace with their
	// user profiles. Requires membership.
	ListWorkspaceMembers(ctx context.Context, requestingUserID, workspaceID string) ([]domain.MemberWithProfile, error)

	// UpdateMemberRole changes a member's role. ADMIN only. A memberID that
	// does not belong to workspaceID is treated as not found.
	UpdateMemberRole(ctx context.Context, requestingUserID, workspaceID, memberID string, role domain.MemberRole) error

	// RemoveMember removes a member. ADMIN, or the member removing themself.
	// A memberID that does not belong to workspaceID is treated as not found.
	RemoveMember(ctx context.Context, requestingUserID, workspaceID, memberID string) error
}

// MemberSvcFacade combines all membership service interfaces
type MemberSvcFacade interface {
	MemberResolverSvc
	MemberAuthorizerSvc
	MemberAdminSvc
}
