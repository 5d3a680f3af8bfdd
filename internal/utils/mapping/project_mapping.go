package mapping

import (
	"github.com/taskhive/taskhive_backend/internal/core/domain"
	"github.com/taskhive/taskhive_backend/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:   d.ProjectID,
		WorkspaceID: d.WorkspaceID,
		Name:        d.Name,
		ImageURL:    d.ImageURL,
		AuditFields: toModelAudit(d.AuditFields),
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:   m.ProjectID,
		WorkspaceID: m.WorkspaceID,
		Name:        m.Name,
		ImageURL:    m.ImageURL,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToDomainProjectSlice converts a slice of model Projects to domain Projects
func ToDomainProjectSlice(ms []models.Project) []domain.Project {
	ds := make([]domain.Project, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProject(m)
	}
	return ds
}
