package dto

import (
	"time"

	"github.com/taskhive/taskhive_backend/internal/core/domain"
)

// CreateProjectRequest defines data for creating a project.
type CreateProjectRequest struct {
	WorkspaceID string  `json:"workspaceId" binding:"required"`
	Name        string  `json:"name" binding:"required,min=1,max=128"`
	ImageURL    *string `json:"imageUrl,omitempty" binding:"omitempty,url"`
}

// UpdateProjectRequest defines a partial project update.
type UpdateProjectRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=128"`
	ImageURL *string `json:"imageUrl,omitempty" binding:"omitempty,url"`
}

// ProjectResponse defines the project representation returned to clients.
type ProjectResponse struct {
	ProjectID   string    `json:"projectId"`
	WorkspaceID string    `json:"workspaceId"`
	Name        string    `json:"name"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListProjectsResponse wraps a workspace's projects.
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ToProjectResponse maps a domain.Project to its API representation.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:   p.ProjectID,
		WorkspaceID: p.WorkspaceID,
		Name:        p.Name,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.LastUpdatedAt,
	}
}

// ToProjectResponses maps a slice of projects.
func ToProjectResponses(projects []domain.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, ToProjectResponse(&projects[i]))
	}
	return out
}
