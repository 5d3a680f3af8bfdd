package mapping

import (
	"github.com/taskhive/taskhive_backend/internal/core/domain"
	"github.com/taskhive/taskhive_backend/internal/models"
)

// ToModelWorkspace converts a domain Workspace to a model Workspace
func ToModelWorkspace(d domain.Workspace) models.Workspace {
	return models.Workspace{
		WorkspaceID: d.WorkspaceID,
		Name:        d.Name,
		OwnerUserID: d.OwnerUserID,
		ImageURL:    d.ImageURL,
		InviteCode:  d.InviteCode,
		AuditFields: toModelAudit(d.AuditFields),
	}
}

// ToDomainWorkspace converts a model Workspace to a domain Workspace
func ToDomainWorkspace(m models.Workspace) domain.Workspace {
	return domain.Workspace{
		WorkspaceID: m.WorkspaceID,
		Name:        m.Name,
		OwnerUserID: m.OwnerUserID,
		ImageURL:    m.ImageURL,
		InviteCode:  m.InviteCode,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToDomainWorkspaceSlice converts a slice of model Workspaces to domain Workspaces
func ToDomainWorkspaceSlice(ms []models.Workspace) []domain.Workspace {
	ds := make([]domain.Workspace, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorkspace(m)
	}
	return ds
}
