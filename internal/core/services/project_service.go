package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive_backend/internal/apperrors"
	"github.com/taskhive/taskhive_backend/internal/core/domain"
	portsrepo "github.com/taskhive/taskhive_backend/internal/core/ports/repositories"
	portssvc "github.com/taskhive/taskhive_backend/internal/core/ports/services"
	"github.com/taskhive/taskhive_backend/internal/dto"
)

// ProjectService handles project lifecycle within a workspace.
type ProjectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates a new ProjectService.
func NewProjectService(pr portsrepo.ProjectRepositoryFacade, authorizer portssvc.MemberAuthorizerSvc) *ProjectService {
	s := &ProjectService{projectRepo: pr}
	s.MemberAuthorizer = authorizer
	return s
}

var _ portssvc.ProjectSvcFacade = (*ProjectService)(nil)

// ListProjects retrieves the projects of a workspace. Requires membership.
func (s *ProjectService) ListProjects(ctx context.Context, requestingUserID, workspaceID string) ([]domain.Project, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListProjectsByWorkspaceID(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to list projects of workspace %s: %w", workspaceID, err)
	}
	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}

// GetProject retrieves a project. The requesting user must be a member of
// the project's workspace.
func (s *ProjectService) GetProject(ctx context.Context, requestingUserID, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("project %s not found", projectID))
		}
		s.LogError(ctx, err, "Failed to find project", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	if err := s.AuthorizeUser(ctx, requestingUserID, project.WorkspaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	return project, nil
}

// CreateProject persists a new project. Requires membership of the target
// workspace.
func (s *ProjectService) CreateProject(ctx context.Context, creatorUserID string, req dto.CreateProjectRequest) (*domain.Project, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, req.WorkspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	now := time.Now()
	project := domain.Project{
		ProjectID:   uuid.NewString(),
		WorkspaceID: req.WorkspaceID,
		Name:        req.Name,
		ImageURL:    req.ImageURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("workspace_id", req.WorkspaceID))
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.LogInfo(ctx, "Project created", slog.String("project_id", project.ProjectID), slog.String("workspace_id", req.WorkspaceID))
	return &project, nil
}

// UpdateProject applies a partial update to name/image. The workspace
// binding is immutable. Requires membership.
func (s *ProjectService) UpdateProject(ctx context.Context, requestingUserID, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("project %s not found", projectID))
		}
		s.LogError(ctx, err, "Failed to find project for update", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	if err := s.AuthorizeUser(ctx, requestingUserID, project.WorkspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.ImageURL != nil {
		project.ImageURL = req.ImageURL
	}
	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = requestingUserID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to update project %s: %w", projectID, err)
	}

	s.LogInfo(ctx, "Project updated", slog.String("project_id", projectID))
	return project, nil
}

// DeleteProject removes a project. Requires membership. Tasks referencing
// the project are not cascade-deleted; listings tolerate the dangling refs.
func (s *ProjectService) DeleteProject(ctx context.Context, requestingUserID, projectID string) error {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(fmt.Sprintf("project %s not found", projectID))
		}
		s.LogError(ctx, err, "Failed to find project for deletion", slog.String("project_id", projectID))
		return fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	if err := s.AuthorizeUser(ctx, requestingUserID, project.WorkspaceID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}

	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID), slog.String("deleted_by", requestingUserID))
	return nil
}
