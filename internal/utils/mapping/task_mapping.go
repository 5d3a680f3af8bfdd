package mapping

import (
	"database/sql"

	"github.com/taskhive/taskhive_backend/internal/core/domain"
	"github.com/taskhive/taskhive_backend/internal/models"
)

// ToModelTask converts a domain Task to a model Task
func ToModelTask(d domain.Task) models.Task {
	m := models.Task{
		TaskID:      d.TaskID,
		WorkspaceID: d.WorkspaceID,
		ProjectID:   d.ProjectID,
		AssigneeID:  d.AssigneeID,
		Name:        d.Name,
		Status:      string(d.Status),
		Position:    d.Position,
		AuditFields: toModelAudit(d.AuditFields),
	}
	if d.Description != nil {
		m.Description = sql.NullString{String: *d.Description, Valid: true}
	}
	if d.DueDate != nil {
		m.DueDate = sql.NullTime{Time: *d.DueDate, Valid: true}
	}
	return m
}

// ToDomainTask converts a model Task to a domain Task
func ToDomainTask(m models.Task) domain.Task {
	d := domain.Task{
		TaskID:      m.TaskID,
		WorkspaceID: m.WorkspaceID,
		ProjectID:   m.ProjectID,
		AssigneeID:  m.AssigneeID,
		Name:        m.Name,
		Status:      domain.TaskStatus(m.Status),
		Position:    m.Position,
		AuditFields: toDomainAudit(m.AuditFields),
	}
	if m.Description.Valid {
		desc := m.Description.String
		d.Description = &desc
	}
	if m.DueDate.Valid {
		due := m.DueDate.Time
		d.DueDate = &due
	}
	return d
}

// ToDomainTaskSlice converts a slice of model Tasks to domain Tasks
func ToDomainTaskSlice(ms []models.Task) []domain.Task {
	ds := make([]domain.Task, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTask(m)
	}
	return ds
}
