package dto

import (
	"time"

	"github.com/taskhive/taskhive_backend/internal/core/domain"
)

// UpdateMemberRoleRequest defines data for changing a member's role.
type UpdateMemberRoleRequest struct {
	Role domain.MemberRole `json:"role" binding:"required,oneof=ADMIN MEMBER"`
}

// MemberResponse defines the member representation returned to clients,
// including the joined user's display profile.
type MemberResponse struct {
	MemberID    string            `json:"memberId"`
	WorkspaceID string            `json:"workspaceId"`
	UserID      string            `json:"userId"`
	Role        domain.MemberRole `json:"role"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	JoinedAt    time.Time         `json:"joinedAt"`
}

// ListMembersResponse wraps a workspace's member roster.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToMemberResponse maps a member with profile to its API representation.
func ToMemberResponse(m *domain.MemberWithProfile) MemberResponse {
	return MemberResponse{
		MemberID:    m.MemberID,
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		Role:        m.Role,
		Name:        m.Name,
		Email:       m.Email,
		JoinedAt:    m.JoinedAt,
	}
}

// ToMemberResponses maps a roster of members with profiles.
func ToMemberResponses(members []domain.MemberWithProfile) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, ToMemberResponse(&members[i]))
	}
	return out
}
