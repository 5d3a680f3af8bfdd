package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/taskhive/taskhive_backend/internal/apperrors"
	"github.com/taskhive/taskhive_backend/internal/core/domain"
	"github.com/taskhive/taskhive_backend/internal/core/services"
	"github.com/taskhive/taskhive_backend/internal/dto"
)

// --- Test Suite Setup ---

type ProjectServiceTestSuite struct {
	suite.Suite
	mockProjectRepo *MockProjectRepository
	mockMemberRepo  *MockMemberRepository
	mockUserRepo    *MockUserRepository
	service         *services.ProjectService
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockUserRepo = new(MockUserRepository)
	authorizer := services.NewMemberService(suite.mockMemberRepo, suite.mockUserRepo)
	suite.service = services.NewProjectService(suite.mockProjectRepo, authorizer)
}

func (suite *ProjectServiceTestSuite) expectMembership(ctx context.Context, userID, workspaceID string, role domain.MemberRole) {
	member := &domain.Member{MemberID: uuid.NewString(), WorkspaceID: workspaceID, UserID: userID, Role: role}
	suite.mockMemberRepo.On("FindMemberByUserAndWorkspace", ctx, userID, workspaceID).Return(member, nil).Once()
}

// --- Test Cases ---

func (suite *ProjectServiceTestSuite) TestCreateProject_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	workspaceID := uuid.NewString()
	req := dto.CreateProjectRequest{WorkspaceID: workspaceID, Name: "Backend"}

	suite.expectMembership(ctx, creatorUserID, workspaceID, domain.RoleMember)
	suite.mockProjectRepo.On("SaveProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.WorkspaceID == workspaceID && p.Name == "Backend" && p.CreatedBy == creatorUserID
	})).Return(nil).Once()

	project, err := suite.service.CreateProject(ctx, creatorUserID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(project)
	suite.NotEmpty(project.ProjectID)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestCreateProject_NonMemberForbidden() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	workspaceID := uuid.NewString()
	req := dto.CreateProjectRequest{WorkspaceID: workspaceID, Name: "Backend"}

	suite.mockMemberRepo.On("FindMemberByUserAndWorkspace", ctx, creatorUserID, workspaceID).Return(nil, apperrors.ErrNotFound).Once()

	project, err := suite.service.CreateProject(ctx, creatorUserID, req)

	suite.Require().Error(err)
	suite.Nil(project)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "SaveProject", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestGetProject_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	workspaceID := uuid.NewString()
	expected := &domain.Project{ProjectID: uuid.NewString(), WorkspaceID: workspaceID, Name: "Backend"}

	suite.mockProjectRepo.On("FindProjectByID", ctx, expected.ProjectID).Return(expected, nil).Once()
	suite.expectMembership(ctx, userID, workspaceID, domain.RoleMember)

	project, err := suite.service.GetProject(ctx, userID, expected.ProjectID)

	suite.Require().NoError(err)
	suite.Equal(expected, project)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestGetProject_NotFound() {
	ctx := context.Background()
	projectID := uuid.NewString()

	suite.mockProjectRepo.On("FindProjectByID", ctx, projectID).Return(nil, apperrors.ErrNotFound).Once()

	project, err := suite.service.GetProject(ctx, uuid.NewString(), projectID)

	suite.Require().Error(err)
	suite.Nil(project)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestListProjects_EmptyIsNotNil() {
	ctx := context.Background()
	userID := uuid.NewString()
	workspaceID := uuid.NewString()

	suite.expectMembership(ctx, userID, workspaceID, domain.RoleMember)
	suite.mockProjectRepo.On("ListProjectsByWorkspaceID", ctx, workspaceID).Return(nil, nil).Once()

	projects, err := suite.service.ListProjects(ctx, userID, workspaceID)

	suite.Require().NoError(err)
	suite.NotNil(projects)
	suite.Empty(projects)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestUpdateProject_PartialPatch() {
	ctx := context.Background()
	userID := uuid.NewString()
	workspaceID := uuid.NewString()
	imageURL := "https://cdn.example.com/old.png"
	original := &domain.Project{ProjectID: uuid.NewString(), WorkspaceID: workspaceID, Name: "Old Name", ImageURL: &imageURL}
	newName := "New Name"
	req := dto.UpdateProjectRequest{Name: &newName}

	suite.mockProjectRepo.On("FindProjectByID", ctx, original.ProjectID).Return(original, nil).Once()
	suite.expectMembership(ctx, userID, workspaceID, domain.RoleMember)
	suite.mockProjectRepo.On("UpdateProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		// Absent fields stay untouched.
		return p.Name == newName && p.ImageURL != nil && *p.ImageURL == imageURL && p.LastUpdatedBy == userID
	})).Return(nil).Once()

	project, err := suite.service.UpdateProject(ctx, userID, original.ProjectID, req)

	suite.Require().NoError(err)
	suite.Equal(newName, project.Name)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestDeleteProject_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	workspaceID := uuid.NewString()
	original := &domain.Project{ProjectID: uuid.NewString(), WorkspaceID: workspaceID, Name: "Doomed"}

	suite.mockProjectRepo.On("FindProjectByID", ctx, original.ProjectID).Return(original, nil).Once()
	suite.expectMembership(ctx, userID, workspaceID, domain.RoleMember)
	suite.mockProjectRepo.On("DeleteProject", ctx, original.ProjectID).Return(nil).Once()

	err := suite.service.DeleteProject(ctx, userID, original.ProjectID)

	suite.Require().NoError(err)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestDeleteProject_NonMemberForbidden() {
	ctx := context.Background()
	userID := uuid.NewString()
	workspaceID := uuid.NewString()
	original := &domain.Project{ProjectID: uuid.NewString(), WorkspaceID: workspaceID, Name: "Protected"}

	suite.mockProjectRepo.On("FindProjectByID", ctx, original.ProjectID).Return(original, nil).Once()
	suite.mockMemberRepo.On("FindMemberByUserAndWorkspace", ctx, userID, workspaceID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteProject(ctx, userID, original.ProjectID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "DeleteProject", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestProjectService(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
