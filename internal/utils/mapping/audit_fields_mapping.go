package mapping

import (
	"github.com/taskhive/taskhive_backend/internal/core/domain"
	"github.com/taskhive/taskhive_backend/internal/models"
)

func toModelAudit(a domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

func toDomainAudit(a models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}
