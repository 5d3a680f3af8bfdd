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
	"github.com/taskhive/taskhive_backend/internal/utils"
)

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  *services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- GetUserByID ---

func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := &domain.User{UserID: userID, Name: "Alice", Email: "alice@example.com"}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(expected, nil).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, user)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- CreateUser ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "correct horse battery"}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.AuthProvider == domain.ProviderLocal &&
			u.PasswordHash != nil &&
			*u.PasswordHash != req.Password && // never stored in the clear
			utils.CheckPasswordHash(req.Password, *u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.Name, user.Name)
	suite.Equal(user.UserID, user.CreatedBy)
	suite.WithinDuration(time.Now(), user.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_EmailAlreadyRegistered() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "correct horse battery"}
	existing := &domain.User{UserID: uuid.NewString(), Email: req.Email}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(existing, nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateOnSave() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "correct horse battery"}

	// A concurrent registration slipped between the uniqueness check and the save.
	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- FindOrCreateGoogleUser ---

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_FoundByProvider() {
	ctx := context.Background()
	providerUserID := uuid.NewString()
	expected := &domain.User{UserID: uuid.NewString(), Email: "alice@example.com", AuthProvider: domain.ProviderGoogle}

	suite.mockRepo.On("FindUserByProviderDetails", ctx, string(domain.ProviderGoogle), providerUserID).Return(expected, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, providerUserID, "alice@example.com", "Alice")

	suite.Require().NoError(err)
	suite.Equal(expected, user)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_LinksExistingLocalAccount() {
	ctx := context.Background()
	providerUserID := uuid.NewString()
	hash := "$2a$10$somethinghashed"
	existing := &domain.User{
		UserID:       uuid.NewString(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: &hash,
		AuthProvider: domain.ProviderLocal,
	}

	suite.mockRepo.On("FindUserByProviderDetails", ctx, string(domain.ProviderGoogle), providerUserID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByEmail", ctx, existing.Email).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == existing.UserID &&
			u.AuthProvider == domain.ProviderGoogle &&
			u.ProviderUserID != nil && *u.ProviderUserID == providerUserID
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, providerUserID, existing.Email, "Alice")

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.Equal(domain.ProviderGoogle, user.AuthProvider)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_CreatesNewAccount() {
	ctx := context.Background()
	providerUserID := uuid.NewString()
	email := "fresh@example.com"

	suite.mockRepo.On("FindUserByProviderDetails", ctx, string(domain.ProviderGoogle), providerUserID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByEmail", ctx, email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == email &&
			u.AuthProvider == domain.ProviderGoogle &&
			u.PasswordHash == nil &&
			u.ProviderUserID != nil && *u.ProviderUserID == providerUserID
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, providerUserID, email, "Fresh User")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal("Fresh User", user.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- DeleteUser ---

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("MarkUserDeleted", ctx, userID, mock.AnythingOfType("time.Time"), userID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_AlreadyDeleted() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("MarkUserDeleted", ctx, userID, mock.AnythingOfType("time.Time"), userID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUser(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Refresh token state ---

func (suite *UserServiceTestSuite) TestStoreRefreshToken_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expiry := time.Now().Add(7 * 24 * time.Hour)

	suite.mockRepo.On("UpdateRefreshToken", ctx, userID, "hashed-token", expiry).Return(nil).Once()

	err := suite.service.StoreRefreshToken(ctx, userID, "hashed-token", expiry)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestClearRefreshToken_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("ClearRefreshToken", ctx, userID).Return(nil).Once()

	err := suite.service.ClearRefreshToken(ctx, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
