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

// positionGap is the spacing between allocated kanban positions. A task
// entering a (workspace, status) column takes the current lowest position
// plus the gap, or 1000 in an empty column. Concurrent creations may
// allocate the same position; listings break the tie by creation time.
const (
	positionGap   = 1000
	firstPosition = 1000
)

// TaskService handles task lifecycle, kanban positioning, and the populated
// task views returned by reads.
type TaskService struct {
	BaseService
	taskRepo    portsrepo.TaskRepositoryFacade
	projectRepo portsrepo.ProjectRepositoryFacade
	memberRepo  portsrepo.MemberRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
}

// NewTaskService creates a new TaskService.
func NewTaskService(tr portsrepo.TaskRepositoryFacade, pr portsrepo.ProjectRepositoryFacade, mr portsrepo.MemberRepositoryFacade, ur portsrepo.UserRepositoryFacade, authorizer portssvc.MemberAuthorizerSvc) *TaskService {
	s := &TaskService{
		taskRepo:    tr,
		projectRepo: pr,
		memberRepo:  mr,
		userRepo:    ur,
	}
	s.MemberAuthorizer = authorizer
	return s
}

var _ portssvc.TaskSvcFacade = (*TaskService)(nil)

// allocatePosition computes the position for a task entering the
// (workspace, status) partition: 1000 for an empty partition, otherwise the
// current lowest plus 1000. Positions only order tasks within one partition.
func (s *TaskService) allocatePosition(ctx context.Context, workspaceID string, status domain.TaskStatus) (int, error) {
	lowest, err := s.taskRepo.FindLowestPosition(ctx, workspaceID, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to find lowest position", slog.String("workspace_id", workspaceID), slog.String("status", string(status)))
		return 0, fmt.Errorf("failed to compute task position: %w", err)
	}
	if lowest == nil {
		return firstPosition, nil
	}
	return *lowest + positionGap, nil
}

// validateProjectBinding checks the project exists and belongs to the workspace.
func (s *TaskService) validateProjectBinding(ctx context.Context, projectID, workspaceID string) error {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationFailedError(fmt.Sprintf("project %s not found", projectID))
		}
		return fmt.Errorf("failed to validate project %s: %w", projectID, err)
	}
	if project.WorkspaceID != workspaceID {
		return apperrors.NewValidationFailedError("project belongs to a different workspace")
	}
	return nil
}

// validateAssigneeBinding checks the assignee member exists and belongs to
// the workspace. Assignees are member ids, not user ids.
func (s *TaskService) validateAssigneeBinding(ctx context.Context, assigneeID, workspaceID string) error {
	member, err := s.memberRepo.FindMemberByID(ctx, assigneeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationFailedError(fmt.Sprintf("assignee %s not found", assigneeID))
		}
		return fmt.Errorf("failed to validate assignee %s: %w", assigneeID, err)
	}
	if member.WorkspaceID != workspaceID {
		return apperrors.NewValidationFailedError("assignee belongs to a different workspace")
	}
	return nil
}

// CreateTask persists a new task, allocating its position in the
// destination status column.
func (s *TaskService) CreateTask(ctx context.Context, creatorUserID string, req dto.CreateTaskRequest) (*domain.Task, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, req.WorkspaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid task status %q", req.Status))
	}
	if err := s.validateProjectBinding(ctx, req.ProjectID, req.WorkspaceID); err != nil {
		return nil, err
	}
	if err := s.validateAssigneeBinding(ctx, req.AssigneeID, req.WorkspaceID); err != nil {
		return nil, err
	}

	position, err := s.allocatePosition(ctx, req.WorkspaceID, req.Status)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task := domain.Task{
		TaskID:      uuid.NewString(),
		WorkspaceID: req.WorkspaceID,
		ProjectID:   req.ProjectID,
		AssigneeID:  req.AssigneeID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
		Position:    position,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to save task", slog.String("workspace_id", req.WorkspaceID))
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.LogInfo(ctx, "Task created", slog.String("task_id", task.TaskID), slog.String("status", string(task.Status)), slog.Int("position", position))
	return &task, nil
}

// UpdateTask applies a partial patch. Moving a task to a different status is
// treated as insertion into the destination column: the task gets a freshly
// allocated position there. Same-status patches never touch the position.
func (s *TaskService) UpdateTask(ctx context.Context, requestingUserID, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("task %s not found", taskID))
		}
		s.LogError(ctx, err, "Failed to find task for update", slog.String("task_id", taskID))
		return nil, fmt.Errorf("failed to find task %s: %w", taskID, err)
	}

	if err := s.AuthorizeUser(ctx, requestingUserID, task.WorkspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid task status %q", *req.Status))
	}
	if req.ProjectID != nil && *req.ProjectID != task.ProjectID {
		if err := s.validateProjectBinding(ctx, *req.ProjectID, task.WorkspaceID); err != nil {
			return nil, err
		}
		task.ProjectID = *req.ProjectID
	}
	if req.AssigneeID != nil && *req.AssigneeID != task.AssigneeID {
		if err := s.validateAssigneeBinding(ctx, *req.AssigneeID, task.WorkspaceID); err != nil {
			return nil, err
		}
		task.AssigneeID = *req.AssigneeID
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Status != nil && *req.Status != task.Status {
		position, err := s.allocatePosition(ctx, task.WorkspaceID, *req.Status)
		if err != nil {
			return nil, err
		}
		task.Status = *req.Status
		task.Position = position
	}

	task.LastUpdatedAt = time.Now()
	task.LastUpdatedBy = requestingUserID

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to update task", slog.String("task_id", taskID))
		return nil, fmt.Errorf("failed to update task %s: %w", taskID, err)
	}

	s.LogInfo(ctx, "Task updated", slog.String("task_id", taskID))
	return task, nil
}

// DeleteTask removes a task. Requires membership of its workspace.
func (s *TaskService) DeleteTask(ctx context.Context, requestingUserID, taskID string) error {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(fmt.Sprintf("task %s not found", taskID))
		}
		s.LogError(ctx, err, "Failed to find task for deletion", slog.String("task_id", taskID))
		return fmt.Errorf("failed to find task %s: %w", taskID, err)
	}

	if err := s.AuthorizeUser(ctx, requestingUserID, task.WorkspaceID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.taskRepo.DeleteTask(ctx, taskID); err != nil {
		s.LogError(ctx, err, "Failed to delete task", slog.String("task_id", taskID))
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}

	s.LogInfo(ctx, "Task deleted", slog.String("task_id", taskID), slog.String("deleted_by", requestingUserID))
	return nil
}

// GetTask retrieves a single task as a populated view.
func (s *TaskService) GetTask(ctx context.Context, requestingUserID, taskID string) (*domain.PopulatedTask, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("task %s not found", taskID))
		}
		s.LogError(ctx, err, "Failed to find task", slog.String("task_id", taskID))
		return nil, fmt.Errorf("failed to find task %s: %w", taskID, err)
	}

	if err := s.AuthorizeUser(ctx, requestingUserID, task.WorkspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	populated, err := s.populateTasks(ctx, []domain.Task{*task})
	if err != nil {
		return nil, err
	}
	return &populated[0], nil
}

// ListTasks retrieves one filtered page of tasks as populated views, newest
// first. Requires membership of the filtered workspace.
func (s *TaskService) ListTasks(ctx context.Context, requestingUserID string, params dto.ListTasksParams) (*dto.ListTasksResult, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, params.WorkspaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	if params.Status != nil && !params.Status.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid task status %q", *params.Status))
	}

	filter := portsrepo.TaskFilter{
		WorkspaceID: params.WorkspaceID,
		ProjectID:   params.ProjectID,
		AssigneeID:  params.AssigneeID,
		Status:      params.Status,
		DueDate:     params.DueDate,
		Search:      params.Search,
	}

	tasks, nextToken, err := s.taskRepo.ListTasks(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to list tasks", slog.String("workspace_id", params.WorkspaceID))
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	populated, err := s.populateTasks(ctx, tasks)
	if err != nil {
		return nil, err
	}

	return &dto.ListTasksResult{Tasks: populated, NextToken: nextToken}, nil
}

// populateTasks resolves project and assignee references for a batch of
// tasks: one batched lookup per collection over the deduplicated reference
// sets, plus one profile lookup per distinct assignee. Dangling references
// leave the corresponding field nil rather than failing the read.
func (s *TaskService) populateTasks(ctx context.Context, tasks []domain.Task) ([]domain.PopulatedTask, error) {
	if len(tasks) == 0 {
		return []domain.PopulatedTask{}, nil
	}

	projectIDSet := make(map[string]struct{})
	memberIDSet := make(map[string]struct{})
	for i := range tasks {
		projectIDSet[tasks[i].ProjectID] = struct{}{}
		memberIDSet[tasks[i].AssigneeID] = struct{}{}
	}
	projectIDs := make([]string, 0, len(projectIDSet))
	for id := range projectIDSet {
		projectIDs = append(projectIDs, id)
	}
	memberIDs := make([]string, 0, len(memberIDSet))
	for id := range memberIDSet {
		memberIDs = append(memberIDs, id)
	}

	projects, err := s.projectRepo.FindProjectsByIDs(ctx, projectIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to batch-load projects for task view")
		return nil, fmt.Errorf("failed to load projects for task view: %w", err)
	}
	projectsByID := make(map[string]domain.Project, len(projects))
	for i := range projects {
		projectsByID[projects[i].ProjectID] = projects[i]
	}

	members, err := s.memberRepo.FindMembersByIDs(ctx, memberIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to batch-load members for task view")
		return nil, fmt.Errorf("failed to load members for task view: %w", err)
	}
	assigneesByID := make(map[string]domain.MemberWithProfile, len(members))
	for i := range members {
		enriched := domain.MemberWithProfile{Member: members[i]}
		user, err := s.userRepo.FindUserByID(ctx, members[i].UserID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogError(ctx, err, "Failed to load assignee profile", slog.String("member_id", members[i].MemberID))
				return nil, fmt.Errorf("failed to load assignee profile: %w", err)
			}
			// Dangling user reference: keep the member with a blank profile.
		} else {
			enriched.Name = user.Name
			enriched.Email = user.Email
		}
		assigneesByID[members[i].MemberID] = enriched
	}

	populated := make([]domain.PopulatedTask, 0, len(tasks))
	for i := range tasks {
		view := domain.PopulatedTask{Task: tasks[i]}
		if project, ok := projectsByID[tasks[i].ProjectID]; ok {
			p := project
			view.Project = &p
		}
		if assignee, ok := assigneesByID[tasks[i].AssigneeID]; ok {
			a := assignee
			view.Assignee = &a
		}
		populated = append(populated, view)
	}
	return populated, nil
}
