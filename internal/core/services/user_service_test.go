package services_test

import (
	"context"
	"testing"

	"github.com/norrapat/notihub/internal/apperrors"
	"github.com/norrapat/notihub/internal/core/domain"
	portssvc "github.com/norrapat/notihub/internal/core/ports/services"
	"github.com/norrapat/notihub/internal/core/services"
	"github.com/norrapat/notihub/internal/dto"
	"github.com/norrapat/notihub/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- RegisterUser ---

func (suite *UserServiceTestSuite) TestRegisterUser_DefaultsAndHashing() {
	ctx := context.Background()
	req := dto.RegisterRequest{Username: "alice", Password: "secret123"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "alice" &&
			u.PasswordHash != "secret123" &&
			utils.CheckPasswordHash("secret123", u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(domain.ProviderCredentials, user.LoginProvider)
	// New accounts start push-enabled; email and LINE wait for a linked identity.
	suite.True(user.CanReceivePush)
	suite.False(user.CanReceiveEmail)
	suite.False(user.CanReceiveLine)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u1", Username: "alice"}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(existing, nil).Once()

	_, err := suite.service.RegisterUser(ctx, dto.RegisterRequest{Username: "alice", Password: "secret123"})

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

// --- AuthenticateUser ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, _ := utils.HashPassword("secret123")
	user := &domain.User{UserID: "u1", Username: "alice", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "alice", "secret123")

	suite.Require().NoError(err)
	suite.Equal("u1", got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, _ := utils.HashPassword("secret123")
	user := &domain.User{UserID: "u1", Username: "alice", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(user, nil).Once()

	_, err := suite.service.AuthenticateUser(ctx, "alice", "wrong")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUser() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_OAuthOnlyUserHasNoPassword() {
	ctx := context.Background()
	user := &domain.User{UserID: "u1", Username: "alice"} // no hash on record
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(user, nil).Once()

	_, err := suite.service.AuthenticateUser(ctx, "alice", "anything")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- LinkGoogleAccount ---

func (suite *UserServiceTestSuite) TestLinkGoogleAccount_RefreshesProfileWithoutTouchingEmailFlag() {
	ctx := context.Background()
	existing := &domain.User{
		UserID:             "u1",
		Email:              "alice@example.com",
		DisplayName:        "old name",
		CanReceiveEmail:    false,
		GoogleRefreshToken: "old-token",
	}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == "u1" &&
			u.DisplayName == "Alice G" &&
			u.LoginProvider == domain.ProviderGoogle &&
			u.GoogleRefreshToken == "new-token" &&
			!u.CanReceiveEmail // linking proves identity, it does not opt in
	})).Return(nil).Once()

	info := domain.GoogleUserInfo{Email: "alice@example.com", Name: "Alice G", Picture: "https://pic"}
	user, err := suite.service.LinkGoogleAccount(ctx, info, "new-token")

	suite.Require().NoError(err)
	suite.False(user.CanReceiveEmail)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestLinkGoogleAccount_KeepsStoredTokenWhenNoneReissued() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u1", Email: "alice@example.com", GoogleRefreshToken: "old-token"}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.GoogleRefreshToken == "old-token"
	})).Return(nil).Once()

	_, err := suite.service.LinkGoogleAccount(ctx, domain.GoogleUserInfo{Email: "alice@example.com"}, "")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestLinkGoogleAccount_UnknownEmailNeverCreates() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.LinkGoogleAccount(ctx, domain.GoogleUserInfo{Email: "new@example.com"}, "tok")

	suite.Require().ErrorIs(err, apperrors.ErrAccountNotLinked)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser")
}

// --- LinkLineAccount ---

func (suite *UserServiceTestSuite) TestLinkLineAccount_EnablesLineFlag() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u1", LineUserID: "L1", CanReceiveLine: false}
	suite.mockUserRepo.On("FindUserByLineUserID", ctx, "L1").Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.CanReceiveLine && u.LoginProvider == domain.ProviderLine && u.DisplayName == "Alice L"
	})).Return(nil).Once()

	profile := domain.LineProfile{UserID: "L1", DisplayName: "Alice L"}
	user, err := suite.service.LinkLineAccount(ctx, profile)

	suite.Require().NoError(err)
	suite.True(user.CanReceiveLine)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestLinkLineAccount_UnknownIDNeverCreates() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByLineUserID", ctx, "L9").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.LinkLineAccount(ctx, domain.LineProfile{UserID: "L9"})

	suite.Require().ErrorIs(err, apperrors.ErrAccountNotLinked)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

// --- UpdateChannelFlags ---

func (suite *UserServiceTestSuite) TestUpdateChannelFlags_PartialUpdate() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u1", CanReceiveEmail: true, CanReceiveLine: true, CanReceivePush: true}
	suite.mockUserRepo.On("FindUserByID", ctx, "u1").Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		// Only push was toggled; the omitted flags keep their values.
		return !u.CanReceivePush && u.CanReceiveEmail && u.CanReceiveLine &&
			u.LastUpdatedBy == "operator-1"
	})).Return(nil).Once()

	off := false
	user, err := suite.service.UpdateChannelFlags(ctx, "u1", dto.UpdateChannelsRequest{Push: &off}, "operator-1")

	suite.Require().NoError(err)
	suite.False(user.CanReceivePush)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateChannelFlags_UnknownUser() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	on := true
	_, err := suite.service.UpdateChannelFlags(ctx, "ghost", dto.UpdateChannelsRequest{Email: &on}, "operator-1")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
