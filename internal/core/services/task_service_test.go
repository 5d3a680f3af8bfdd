package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/taskhive/taskhive_backend/internal/apperrors"
	"github.com/taskhive/taskhive_backend/internal/core/domain"
	"github.com/taskhive/taskhive_backend/internal/core/services"
	"github.com/taskhive/taskhive_backend/internal/dto"
)

// --- Test Suite Setup ---

type TaskServiceTestSuite struct {
	suite.Suite
	mockTaskRepo    *MockTaskRepository
	mockProjectRepo *MockProjectRepository
	mockMemberRepo  *MockMemberRepository
	mockUserRepo    *MockUserRepository
	service         *services.TaskService

	workspaceID string
	userID      string
	projectID   string
	assigneeID  string
}

func (suite *TaskServiceTestSuite) SetupTest() {
	suite.mockTaskRepo = new(MockTaskRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockUserRepo = new(MockUserRepository)
	authorizer := services.NewMemberService(suite.mockMemberRepo, suite.mockUserRepo)
	suite.service = services.NewTaskService(suite.mockTaskRepo, suite.mockProjectRepo, suite.mockMemberRepo, suite.mockUserRepo, authorizer)

	suite.workspaceID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.projectID = uuid.NewString()
	suite.assigneeID = uuid.NewString()
}

// expectMember primes the member repo so the suite's user resolves as a
// MEMBER of the suite's workspace.
func (suite *TaskServiceTestSuite) expectMember(ctx context.Context) {
	member := &domain.Member{MemberID: uuid.NewString(), WorkspaceID: suite.workspaceID, UserID: suite.userID, Role: domain.RoleMember}
	suite.mockMemberRepo.On("FindMemberByUserAndWorkspace", ctx, suite.userID, suite.workspaceID).Return(member, nil).Once()
}

// expectValidBindings primes project and assignee lookups to succeed within
// the suite's workspace.
func (suite *TaskServiceTestSuite) expectValidBindings(ctx context.Context) {
	project := &domain.Project{ProjectID: suite.projectID, WorkspaceID: suite.workspaceID, Name: "Backend"}
	assignee := &domain.Member{MemberID: suite.assigneeID, WorkspaceID: suite.workspaceID, UserID: uuid.NewString(), Role: domain.RoleMember}
	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.projectID).Return(project, nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", ctx, suite.assigneeID).Return(assignee, nil).Once()
}

func (suite *TaskServiceTestSuite) createTaskRequest() dto.CreateTaskRequest {
	return dto.CreateTaskRequest{
		WorkspaceID: suite.workspaceID,
		ProjectID:   suite.projectID,
		AssigneeID:  suite.assigneeID,
		Name:        "Write migration",
		Status:      domain.StatusTodo,
	}
}

// --- CreateTask: position allocation ---

func (suite *TaskServiceTestSuite) TestCreateTask_EmptyColumnGetsFirstPosition() {
	ctx := context.Background()
	suite.expectMember(ctx)
	suite.expectValidBindings(ctx)

	suite.mockTaskRepo.On("FindLowestPosition", ctx, suite.workspaceID, domain.StatusTodo).Return(nil, nil).Once()
	suite.mockTaskRepo.On("SaveTask", ctx, mock.MatchedBy(func(t domain.Task) bool {
		return t.Position == 1000 && t.Status == domain.StatusTodo && t.WorkspaceID == suite.workspaceID
	})).Return(nil).Once()

	task, err := suite.service.CreateTask(ctx, suite.userID, suite.createTaskRequest())

	suite.Require().NoError(err)
	suite.Require().NotNil(task)
	suite.Equal(1000, task.Position)
	suite.Equal(suite.userID, task.CreatedBy)
	suite.WithinDuration(time.Now(), task.CreatedAt, time.Second)
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestCreateTask_OccupiedColumnTakesHead() {
	ctx := context.Background()
	suite.expectMember(ctx)
	suite.expectValidBindings(ctx)

	lowest := 3000
	suite.mockTaskRepo.On("FindLowestPosition", ctx, suite.workspaceID, domain.StatusTodo).Return(&lowest, nil).Once()
	suite.mockTaskRepo.On("SaveTask", ctx, mock.MatchedBy(func(t domain.Task) bool {
		return t.Position == 4000
	})).Return(nil).Once()

	task, err := suite.service.CreateTask(ctx, suite.userID, suite.createTaskRequest())

	suite.Require().NoError(err)
	suite.Equal(4000, task.Position)
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestCreateTask_PositionIsPerStatusColumn() {
	ctx := context.Background()
	suite.expectMember(ctx)
	suite.expectValidBindings(ctx)

	// Only the destination column is consulted; other columns do not
	// influence the allocated position.
	req := suite.createTaskRequest()
	req.Status = domain.StatusInProgress
	lowest := 1000
	suite.mockTaskRepo.On("FindLowestPosition", ctx, suite.workspaceID, domain.StatusInProgress).Return(&lowest, nil).Once()
	suite.mockTaskRepo.On("SaveTask", ctx, mock.AnythingOfType("domain.Task")).Return(nil).Once()

	task, err := suite.service.CreateTask(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(2000, task.Position)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "FindLowestPosition", mock.Anything, mock.Anything, domain.StatusTodo)
}

// --- CreateTask: validation ---

func (suite *TaskServiceTestSuite) TestCreateTask_InvalidStatus() {
	ctx := context.Background()
	suite.expectMember(ctx)

	req := suite.createTaskRequest()
	req.Status = domain.TaskStatus("SHIPPED")

	task, err := suite.service.CreateTask(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(task)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "SaveTask", mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestCreateTask_ProjectInDifferentWorkspace() {
	ctx := context.Background()
	suite.expectMember(ctx)

	foreign := &domain.Project{ProjectID: suite.projectID, WorkspaceID: uuid.NewString(), Name: "Elsewhere"}
	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.projectID).Return(foreign, nil).Once()

	task, err := suite.service.CreateTask(ctx, suite.userID, suite.createTaskRequest())

	suite.Require().Error(err)
	suite.Nil(task)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "SaveTask", mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestCreateTask_AssigneeNotFound() {
	ctx := context.Background()
	suite.expectMember(ctx)

	project := &domain.Project{ProjectID: suite.projectID, WorkspaceID: suite.workspaceID}
	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.projectID).Return(project, nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", ctx, suite.assigneeID).Return(nil, apperrors.ErrNotFound).Once()

	task, err := suite.service.CreateTask(ctx, suite.userID, suite.createTaskRequest())

	suite.Require().Error(err)
	suite.Nil(task)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "SaveTask", mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestCreateTask_NonMemberForbidden() {
	ctx := context.Background()

	suite.mockMemberRepo.On("FindMemberByUserAndWorkspace", ctx, suite.userID, suite.workspaceID).Return(nil, apperrors.ErrNotFound).Once()

	task, err := suite.service.CreateTask(ctx, suite.userID, suite.createTaskRequest())

	suite.Require().Error(err)
	suite.Nil(task)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "SaveTask", mock.Anything, mock.Anything)
}

// --- UpdateTask ---

func (suite *TaskServiceTestSuite) existingTask(status domain.TaskStatus, position int) *domain.Task {
	return &domain.Task{
		TaskID:      uuid.NewString(),
		WorkspaceID: suite.workspaceID,
		ProjectID:   suite.projectID,
		AssigneeID:  suite.assigneeID,
		Name:        "Write migration",
		Status:      status,
		Position:    position,
	}
}

func (suite *TaskServiceTestSuite) TestUpdateTask_StatusChangeReallocatesPosition() {
	ctx := context.Background()
	original := suite.existingTask(domain.StatusTodo, 4000)
	newStatus := domain.StatusInProgress
	req := dto.UpdateTaskRequest{Status: &newStatus}

	suite.mockTaskRepo.On("FindTaskByID", ctx, original.TaskID).Return(original, nil).Once()
	suite.expectMember(ctx)
	lowest := 2000
	suite.mockTaskRepo.On("FindLowestPosition", ctx, suite.workspaceID, domain.StatusInProgress).Return(&lowest, nil).Once()
	suite.mockTaskRepo.On("UpdateTask", ctx, mock.MatchedBy(func(t domain.Task) bool {
		return t.Status == domain.StatusInProgress && t.Position == 3000 && t.LastUpdatedBy == suite.userID
	})).Return(nil).Once()

	task, err := suite.service.UpdateTask(ctx, suite.userID, original.TaskID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusInProgress, task.Status)
	suite.Equal(3000, task.Position)
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestUpdateTask_SameStatusKeepsPosition() {
	ctx := context.Background()
	original := suite.existingTask(domain.StatusTodo, 4000)
	newName := "Write and test migration"
	sameStatus := domain.StatusTodo
	req := dto.UpdateTaskRequest{Name: &newName, Status: &sameStatus}

	suite.mockTaskRepo.On("FindTaskByID", ctx, original.TaskID).Return(original, nil).Once()
	suite.expectMember(ctx)
	suite.mockTaskRepo.On("UpdateTask", ctx, mock.MatchedBy(func(t domain.Task) bool {
		return t.Name == newName && t.Position == 4000 && t.Status == domain.StatusTodo
	})).Return(nil).Once()

	task, err := suite.service.UpdateTask(ctx, suite.userID, original.TaskID, req)

	suite.Require().NoError(err)
	suite.Equal(4000, task.Position)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "FindLowestPosition", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_NotFound() {
	ctx := context.Background()
	taskID := uuid.NewString()
	newName := "Doesn't matter"
	req := dto.UpdateTaskRequest{Name: &newName}

	suite.mockTaskRepo.On("FindTaskByID", ctx, taskID).Return(nil, apperrors.ErrNotFound).Once()

	task, err := suite.service.UpdateTask(ctx, suite.userID, taskID, req)

	suite.Require().Error(err)
	suite.Nil(task)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "UpdateTask", mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_NonMemberForbidden() {
	ctx := context.Background()
	original := suite.existingTask(domain.StatusTodo, 1000)
	newName := "Denied"
	req := dto.UpdateTaskRequest{Name: &newName}

	suite.mockTaskRepo.On("FindTaskByID", ctx, original.TaskID).Return(original, nil).Once()
	suite.mockMemberRepo.On("FindMemberByUserAndWorkspace", ctx, suite.userID, suite.workspaceID).Return(nil, apperrors.ErrNotFound).Once()

	task, err := suite.service.UpdateTask(ctx, suite.userID, original.TaskID, req)

	suite.Require().Error(err)
	suite.Nil(task)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "UpdateTask", mock.Anything, mock.Anything)
}

// --- DeleteTask ---

func (suite *TaskServiceTestSuite) TestDeleteTask_Success() {
	ctx := context.Background()
	original := suite.existingTask(domain.StatusDone, 1000)

	suite.mockTaskRepo.On("FindTaskByID", ctx, original.TaskID).Return(original, nil).Once()
	suite.expectMember(ctx)
	suite.mockTaskRepo.On("DeleteTask", ctx, original.TaskID).Return(nil).Once()

	err := suite.service.DeleteTask(ctx, suite.userID, original.TaskID)

	suite.Require().NoError(err)
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

// --- GetTask ---

func (suite *TaskServiceTestSuite) TestGetTask_PopulatedView() {
	ctx := context.Background()
	original := suite.existingTask(domain.StatusTodo, 1000)
	assigneeUserID := uuid.NewString()
	project := domain.Project{ProjectID: suite.projectID, WorkspaceID: suite.workspaceID, Name: "Backend"}
	assignee := domain.Member{MemberID: suite.assigneeID, WorkspaceID: suite.workspaceID, UserID: assigneeUserID, Role: domain.RoleMember}

	suite.mockTaskRepo.On("FindTaskByID", ctx, original.TaskID).Return(original, nil).Once()
	suite.expectMember(ctx)
	suite.mockProjectRepo.On("FindProjectsByIDs", ctx, []string{suite.projectID}).Return([]domain.Project{project}, nil).Once()
	suite.mockMemberRepo.On("FindMembersByIDs", ctx, []string{suite.assigneeID}).Return([]domain.Member{assignee}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, assigneeUserID).Return(&domain.User{UserID: assigneeUserID, Name: "Bob", Email: "bob@example.com"}, nil).Once()

	populated, err := suite.service.GetTask(ctx, suite.userID, original.TaskID)

	suite.Require().NoError(err)
	suite.Require().NotNil(populated)
	suite.Require().NotNil(populated.Project)
	suite.Equal("Backend", populated.Project.Name)
	suite.Require().NotNil(populated.Assignee)
	suite.Equal("Bob", populated.Assignee.Name)
	suite.Equal("bob@example.com", populated.Assignee.Email)
	suite.mockProjectRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestGetTask_DanglingReferencesStayNil() {
	ctx := context.Background()
	original := suite.existingTask(domain.StatusTodo, 1000)

	suite.mockTaskRepo.On("FindTaskByID", ctx, original.TaskID).Return(original, nil).Once()
	suite.expectMember(ctx)
	// The referenced project and assignee were deleted out from under the task.
	suite.mockProjectRepo.On("FindProjectsByIDs", ctx, []string{suite.projectID}).Return([]domain.Project{}, nil).Once()
	suite.mockMemberRepo.On("FindMembersByIDs", ctx, []string{suite.assigneeID}).Return([]domain.Member{}, nil).Once()

	populated, err := suite.service.GetTask(ctx, suite.userID, original.TaskID)

	suite.Require().NoError(err)
	suite.Require().NotNil(populated)
	suite.Nil(populated.Project)
	suite.Nil(populated.Assignee)
	suite.Equal(original.TaskID, populated.TaskID)
}

// --- ListTasks ---

func (suite *TaskServiceTestSuite) TestListTasks_DeduplicatesReferenceLookups() {
	ctx := context.Background()
	suite.expectMember(ctx)
	assigneeUserID := uuid.NewString()
	project := domain.Project{ProjectID: suite.projectID, WorkspaceID: suite.workspaceID, Name: "Backend"}
	assignee := domain.Member{MemberID: suite.assigneeID, WorkspaceID: suite.workspaceID, UserID: assigneeUserID, Role: domain.RoleMember}
	tasks := []domain.Task{
		*suite.existingTask(domain.StatusTodo, 2000),
		*suite.existingTask(domain.StatusTodo, 1000),
	}
	params := dto.ListTasksParams{WorkspaceID: suite.workspaceID, Limit: 50}

	suite.mockTaskRepo.On("ListTasks", ctx, mock.AnythingOfType("repositories.TaskFilter"), 50, (*string)(nil)).Return(tasks, nil, nil).Once()
	// Both tasks share one project and one assignee: one batched lookup each.
	suite.mockProjectRepo.On("FindProjectsByIDs", ctx, []string{suite.projectID}).Return([]domain.Project{project}, nil).Once()
	suite.mockMemberRepo.On("FindMembersByIDs", ctx, []string{suite.assigneeID}).Return([]domain.Member{assignee}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, assigneeUserID).Return(&domain.User{UserID: assigneeUserID, Name: "Bob", Email: "bob@example.com"}, nil).Once()

	result, err := suite.service.ListTasks(ctx, suite.userID, params)

	suite.Require().NoError(err)
	suite.Require().Len(result.Tasks, 2)
	suite.Nil(result.NextToken)
	for _, populated := range result.Tasks {
		suite.Require().NotNil(populated.Project)
		suite.Require().NotNil(populated.Assignee)
		suite.Equal("Bob", populated.Assignee.Name)
	}
	suite.mockProjectRepo.AssertExpectations(suite.T())
	suite.mockMemberRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestListTasks_PassesNextTokenThrough() {
	ctx := context.Background()
	suite.expectMember(ctx)
	nextToken := "b3BhcXVl"
	params := dto.ListTasksParams{WorkspaceID: suite.workspaceID, Limit: 1}

	suite.mockTaskRepo.On("ListTasks", ctx, mock.AnythingOfType("repositories.TaskFilter"), 1, (*string)(nil)).
		Return([]domain.Task{*suite.existingTask(domain.StatusTodo, 1000)}, &nextToken, nil).Once()
	suite.mockProjectRepo.On("FindProjectsByIDs", ctx, mock.Anything).Return([]domain.Project{}, nil).Once()
	suite.mockMemberRepo.On("FindMembersByIDs", ctx, mock.Anything).Return([]domain.Member{}, nil).Once()

	result, err := suite.service.ListTasks(ctx, suite.userID, params)

	suite.Require().NoError(err)
	suite.Require().NotNil(result.NextToken)
	suite.Equal(nextToken, *result.NextToken)
}

func (suite *TaskServiceTestSuite) TestListTasks_InvalidStatusFilter() {
	ctx := context.Background()
	suite.expectMember(ctx)
	badStatus := domain.TaskStatus("SHIPPED")
	params := dto.ListTasksParams{WorkspaceID: suite.workspaceID, Status: &badStatus, Limit: 50}

	result, err := suite.service.ListTasks(ctx, suite.userID, params)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "ListTasks", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestListTasks_NonMemberForbidden() {
	ctx := context.Background()
	params := dto.ListTasksParams{WorkspaceID: suite.workspaceID, Limit: 50}

	suite.mockMemberRepo.On("FindMemberByUserAndWorkspace", ctx, suite.userID, suite.workspaceID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.ListTasks(ctx, suite.userID, params)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "ListTasks", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestTaskService(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
