package services_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/norrapat/notihub/internal/apperrors"
	"github.com/norrapat/notihub/internal/core/domain"
	"github.com/norrapat/notihub/internal/core/services"
	"github.com/norrapat/notihub/internal/dto"
	"github.com/stretchr/testify/suite"
)

// fakeSender records invocations and returns canned outcomes.
type fakeSender struct {
	channel  domain.Channel
	calls    atomic.Int64
	outcomes func(targets []domain.Target) []domain.SendOutcome
}

func (f *fakeSender) Channel() domain.Channel {
	return f.channel
}

func (f *fakeSender) Send(ctx context.Context, targets []domain.Target, message string) []domain.SendOutcome {
	f.calls.Add(1)
	if f.outcomes != nil {
		return f.outcomes(targets)
	}
	out := make([]domain.SendOutcome, len(targets))
	for i, t := range targets {
		out[i] = domain.SendOutcome{Channel: f.channel, UserID: t.UserID}
	}
	return out
}

type DispatchServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	emailSender  *fakeSender
	lineSender   *fakeSender
	pushSender   *fakeSender
	service      *services.DispatchService
}

func (suite *DispatchServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.emailSender = &fakeSender{channel: domain.ChannelEmail}
	suite.lineSender = &fakeSender{channel: domain.ChannelLine}
	suite.pushSender = &fakeSender{channel: domain.ChannelPush}
	suite.service = services.NewDispatchService(suite.mockUserRepo, suite.emailSender, suite.lineSender, suite.pushSender)
}

func (suite *DispatchServiceTestSuite) TestDispatch_BlankMessageFailsBeforeAnyWork() {
	req := dto.DispatchRequest{
		Message:      "   \n\t ",
		RecipientIDs: []string{"u1"},
		Channels:     dto.ChannelSelection{Push: true},
	}

	res, err := suite.service.Dispatch(context.Background(), req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(res)
	suite.EqualValues(0, suite.pushSender.calls.Load())
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUsersByIDs")
}

func (suite *DispatchServiceTestSuite) TestDispatch_MissingSenderFailsBeforeAnySend() {
	service := services.NewDispatchService(suite.mockUserRepo, suite.pushSender)
	req := dto.DispatchRequest{
		Message:      "hello",
		RecipientIDs: []string{"u1"},
		Channels:     dto.ChannelSelection{Email: true, Push: true},
	}

	res, err := service.Dispatch(context.Background(), req)

	suite.Require().Error(err)
	suite.Nil(res)
	suite.EqualValues(0, suite.pushSender.calls.Load())
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUsersByIDs")
}

func (suite *DispatchServiceTestSuite) TestDispatch_NoRecipientsFails() {
	req := dto.DispatchRequest{
		Message:  "hello",
		Channels: dto.ChannelSelection{Push: true},
	}

	_, err := suite.service.Dispatch(context.Background(), req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DispatchServiceTestSuite) TestDispatch_NoChannelsFails() {
	req := dto.DispatchRequest{
		Message:      "hello",
		RecipientIDs: []string{"u1"},
	}

	_, err := suite.service.Dispatch(context.Background(), req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DispatchServiceTestSuite) TestDispatch_PushOnlyInvokesOnlyPushSender() {
	ctx := context.Background()
	users := []domain.User{
		{UserID: "u1", CanReceivePush: true, Email: "a@example.com", CanReceiveEmail: true},
		{UserID: "u2", CanReceivePush: true},
	}
	suite.mockUserRepo.On("FindUsersByIDs", ctx, []string{"u1", "u2"}).Return(users, nil).Once()

	req := dto.DispatchRequest{
		Message:      "hello",
		RecipientIDs: []string{"u1", "u2"},
		Channels:     dto.ChannelSelection{Push: true},
	}
	res, err := suite.service.Dispatch(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(2, res.SentCount)
	suite.EqualValues(1, suite.pushSender.calls.Load())
	suite.EqualValues(0, suite.emailSender.calls.Load())
	suite.EqualValues(0, suite.lineSender.calls.Load())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *DispatchServiceTestSuite) TestDispatch_EmptyTargetSetSkipsSenderSilently() {
	ctx := context.Background()
	// Nobody is email-eligible.
	users := []domain.User{{UserID: "u1", CanReceivePush: true}}
	suite.mockUserRepo.On("FindUsersByIDs", ctx, []string{"u1"}).Return(users, nil).Once()

	req := dto.DispatchRequest{
		Message:      "hello",
		RecipientIDs: []string{"u1"},
		Channels:     dto.ChannelSelection{Email: true, Push: true},
	}
	res, err := suite.service.Dispatch(ctx, req)

	suite.Require().NoError(err)
	suite.EqualValues(0, suite.emailSender.calls.Load())
	suite.EqualValues(1, suite.pushSender.calls.Load())
	suite.Equal(1, res.SentCount)

	var emailResult *domain.ChannelResult
	for i := range res.Channels {
		if res.Channels[i].Channel == domain.ChannelEmail {
			emailResult = &res.Channels[i]
		}
	}
	suite.Require().NotNil(emailResult)
	suite.Equal(0, emailResult.Attempted)
}

func (suite *DispatchServiceTestSuite) TestDispatch_FailuresOnOneChannelDoNotAffectAnother() {
	ctx := context.Background()
	users := []domain.User{
		{UserID: "u1", Email: "a@example.com", CanReceiveEmail: true, CanReceivePush: true},
	}
	suite.mockUserRepo.On("FindUsersByIDs", ctx, []string{"u1"}).Return(users, nil).Once()

	suite.emailSender.outcomes = func(targets []domain.Target) []domain.SendOutcome {
		out := make([]domain.SendOutcome, len(targets))
		for i, t := range targets {
			out[i] = domain.SendOutcome{Channel: domain.ChannelEmail, UserID: t.UserID, Err: errors.New("smtp exploded")}
		}
		return out
	}

	req := dto.DispatchRequest{
		Message:      "hello",
		RecipientIDs: []string{"u1"},
		Channels:     dto.ChannelSelection{Email: true, Push: true},
	}
	res, err := suite.service.Dispatch(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(1, res.SentCount) // push succeeded, email failed

	for _, ch := range res.Channels {
		switch ch.Channel {
		case domain.ChannelEmail:
			suite.Equal(1, ch.Failed)
			suite.Equal(0, ch.Sent)
		case domain.ChannelPush:
			suite.Equal(1, ch.Sent)
			suite.Equal(0, ch.Failed)
		}
	}
}

func (suite *DispatchServiceTestSuite) TestDispatch_UnknownRecipientsAreSkipped() {
	ctx := context.Background()
	// Only one of the two requested ids resolves.
	users := []domain.User{{UserID: "u1", CanReceivePush: true}}
	suite.mockUserRepo.On("FindUsersByIDs", ctx, []string{"u1", "ghost"}).Return(users, nil).Once()

	req := dto.DispatchRequest{
		Message:      "hello",
		RecipientIDs: []string{"u1", "ghost"},
		Channels:     dto.ChannelSelection{Push: true},
	}
	res, err := suite.service.Dispatch(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(1, res.SentCount)
}

func TestDispatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DispatchServiceTestSuite))
}
