package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/taskhive/taskhive_backend/internal/core/domain"
	portsrepo "github.com/taskhive/taskhive_backend/internal/core/ports/repositories"
)

// Shared repository mocks for the service test suites. The services share
// repositories, so the mocks live here instead of per test file.

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error {
	args := m.Called(ctx, userID, deletedAt, deleterUserID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockWorkspaceRepository is a mock type for the WorkspaceRepositoryFacade interface
type MockWorkspaceRepository struct {
	mock.Mock
}

func (m *MockWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) UpdateInviteCode(ctx context.Context, workspaceID, newCode, updatedByUserID string) error {
	args := m.Called(ctx, workspaceID, newCode, updatedByUserID)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	args := m.Called(ctx, workspaceID)
	return args.Error(0)
}

// MockMemberRepository is a mock type for the MemberRepositoryFacade interface
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindMemberByUserAndWorkspace(ctx context.Context, userID, workspaceID string) (*domain.Member, error) {
	args := m.Called(ctx, userID, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindMembersByIDs(ctx context.Context, memberIDs []string) ([]domain.Member, error) {
	args := m.Called(ctx, memberIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListMembersByWorkspaceID(ctx context.Context, workspaceID string) ([]domain.Member, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) UpdateMemberRole(ctx context.Context, memberID string, role domain.MemberRole) error {
	args := m.Called(ctx, memberID, role)
	return args.Error(0)
}

func (m *MockMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

// MockProjectRepository is a mock type for the ProjectRepositoryFacade interface
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectsByIDs(ctx context.Context, projectIDs []string) ([]domain.Project, error) {
	args := m.Called(ctx, projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjectsByWorkspaceID(ctx context.Context, workspaceID string) ([]domain.Project, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// MockTaskRepository is a mock type for the TaskRepositoryFacade interface
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) ListTasks(ctx context.Context, filter portsrepo.TaskFilter, limit int, nextToken *string) ([]domain.Task, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var tasks []domain.Task
	if args.Get(0) != nil {
		tasks = args.Get(0).([]domain.Task)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return tasks, token, args.Error(2)
}

func (m *MockTaskRepository) FindLowestPosition(ctx context.Context, workspaceID string, status domain.TaskStatus) (*int, error) {
	args := m.Called(ctx, workspaceID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int), args.Error(1)
}

func (m *MockTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}
