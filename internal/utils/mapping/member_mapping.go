package mapping

import (
	"github.com/taskhive/taskhive_backend/internal/core/domain"
	"github.com/taskhive/taskhive_backend/internal/models"
)

// ToModelMember converts a domain Member to a model Member
func ToModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:    d.MemberID,
		WorkspaceID: d.WorkspaceID,
		UserID:      d.UserID,
		Role:        string(d.Role),
		JoinedAt:    d.JoinedAt,
	}
}

// ToDomainMember converts a model Member to a domain Member
func ToDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:    m.MemberID,
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		Role:        domain.MemberRole(m.Role),
		JoinedAt:    m.JoinedAt,
	}
}

// ToDomainMemberSlice converts a slice of model Members to domain Members
func ToDomainMemberSlice(ms []models.Member) []domain.Member {
	ds := make([]domain.Member, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMember(m)
	}
	return ds
}
