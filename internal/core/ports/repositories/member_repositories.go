package repositories

import (
	"context"

	"github.com/taskhive/taskhive_backend/internal/core/domain"
)

// MemberReader defines read operations for membership data
type MemberReader interface {
	// FindMemberByID retrieves a specific member record by its ID.
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// FindMemberByUserAndWorkspace retrieves the unique member record for a
	// (user, workspace) pair. Returns apperrors.ErrNotFound when none exists.
	FindMemberByUserAndWorkspace(ctx context.Context, userID, workspaceID string) (*domain.Member, error)

	// FindMembersByIDs retrieves member records for a set of member IDs in a
	// single batched query. Missing IDs are simply absent from the result.
	FindMembersByIDs(ctx context.Context, memberIDs []string) ([]domain.Member, error)

	// ListMembersByWorkspaceID retrieves all member records of a workspace.
	ListMembersByWorkspaceID(ctx context.Context, workspaceID string) ([]domain.Member, error)
}

// MemberWriter defines write operations for membership data
type MemberWriter interface {
	// SaveMember persists a new membership.
	SaveMember(ctx context.Context, member domain.Member) error

	// UpdateMemberRole changes the role of an existing member.
	UpdateMemberRole(ctx context.Context, memberID string, role domain.MemberRole) error

	// DeleteMember removes a membership.
	DeleteMember(ctx context.Context, memberID string) error
}

// MemberRepositoryFacade combines all membership repository interfaces
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}
