package dto

import (
	"time"

	"github.com/taskhive/taskhive_backend/internal/core/domain"
)

// CreateWorkspaceRequest defines data for creating a workspace.
type CreateWorkspaceRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=128"`
	ImageURL *string `json:"imageUrl,omitempty" binding:"omitempty,url"`
}

// UpdateWorkspaceRequest defines a partial workspace update. Absent fields
// are left untouched.
type UpdateWorkspaceRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=128"`
	ImageURL *string `json:"imageUrl,omitempty" binding:"omitempty,url"`
}

// JoinWorkspaceRequest carries the invite code presented when joining.
type JoinWorkspaceRequest struct {
	InviteCode string `json:"inviteCode" binding:"required"`
}

// WorkspaceResponse defines the workspace representation returned to clients.
// InviteCode is only populated on admin-facing responses.
type WorkspaceResponse struct {
	WorkspaceID string    `json:"workspaceId"`
	Name        string    `json:"name"`
	OwnerUserID string    `json:"ownerUserId"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	InviteCode  string    `json:"inviteCode,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListWorkspacesResponse wraps the workspaces visible to the caller.
type ListWorkspacesResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
}

// ToWorkspaceResponse maps a domain.Workspace to its API representation. The
// invite code is omitted; use ToWorkspaceAdminResponse for admin flows.
func ToWorkspaceResponse(ws *domain.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		WorkspaceID: ws.WorkspaceID,
		Name:        ws.Name,
		OwnerUserID: ws.OwnerUserID,
		ImageURL:    ws.ImageURL,
		CreatedAt:   ws.CreatedAt,
		UpdatedAt:   ws.LastUpdatedAt,
	}
}

// ToWorkspaceAdminResponse maps a workspace including its invite code.
func ToWorkspaceAdminResponse(ws *domain.Workspace) WorkspaceResponse {
	resp := ToWorkspaceResponse(ws)
	resp.InviteCode = ws.InviteCode
	return resp
}

// ToWorkspaceResponses maps a slice of workspaces without invite codes.
func ToWorkspaceResponses(workspaces []domain.Workspace) []WorkspaceResponse {
	out := make([]WorkspaceResponse, 0, len(workspaces))
	for i := range workspaces {
		out = append(out, ToWorkspaceResponse(&workspaces[i]))
	}
	return out
}
