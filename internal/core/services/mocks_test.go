package services_test

import (
	"context"
	"time"

	"github.com/norrapat/notihub/internal/core/domain"
	portsrepo "github.com/norrapat/notihub/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	SaveUserFn             func(ctx context.Context, user domain.User) error
	FindUserByIDFn         func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsernameFn   func(ctx context.Context, username string) (*domain.User, error)
	FindUserByEmailFn      func(ctx context.Context, email string) (*domain.User, error)
	FindUserByLineUserIDFn func(ctx context.Context, lineUserID string) (*domain.User, error)
	FindUsersFn            func(ctx context.Context, limit, offset int) ([]domain.User, error)
	FindUsersByIDsFn       func(ctx context.Context, userIDs []string) ([]domain.User, error)
	UpdateUserFn           func(ctx context.Context, user domain.User) error
	MarkUserDeletedFn      func(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindUserByUsernameFn != nil {
		return m.FindUserByUsernameFn(ctx, username)
	}
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByLineUserID(ctx context.Context, lineUserID string) (*domain.User, error) {
	if m.FindUserByLineUserIDFn != nil {
		return m.FindUserByLineUserIDFn(ctx, lineUserID)
	}
	args := m.Called(ctx, lineUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if m.FindUsersFn != nil {
		return m.FindUsersFn(ctx, limit, offset)
	}
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) FindUsersByIDs(ctx context.Context, userIDs []string) ([]domain.User, error) {
	if m.FindUsersByIDsFn != nil {
		return m.FindUsersByIDsFn(ctx, userIDs)
	}
	args := m.Called(ctx, userIDs)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	if m.MarkUserDeletedFn != nil {
		return m.MarkUserDeletedFn(ctx, userID, deletedAt, deletedBy)
	}
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

// --- Mock PushSubscriptionRepository ---
type MockSubscriptionRepository struct {
	mock.Mock
	SaveSubscriptionFn                func(ctx context.Context, sub domain.PushSubscription) (string, error)
	FindActiveSubscriptionsByUserIDFn func(ctx context.Context, userID string) ([]domain.PushSubscription, error)
	DeleteSubscriptionFn              func(ctx context.Context, subscriptionID string) error
}

func (m *MockSubscriptionRepository) SaveSubscription(ctx context.Context, sub domain.PushSubscription) (string, error) {
	if m.SaveSubscriptionFn != nil {
		return m.SaveSubscriptionFn(ctx, sub)
	}
	args := m.Called(ctx, sub)
	return args.String(0), args.Error(1)
}

func (m *MockSubscriptionRepository) FindActiveSubscriptionsByUserID(ctx context.Context, userID string) ([]domain.PushSubscription, error) {
	if m.FindActiveSubscriptionsByUserIDFn != nil {
		return m.FindActiveSubscriptionsByUserIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var subs []domain.PushSubscription
	if args.Get(0) != nil {
		subs = args.Get(0).([]domain.PushSubscription)
	}
	return subs, args.Error(1)
}

func (m *MockSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	if m.DeleteSubscriptionFn != nil {
		return m.DeleteSubscriptionFn(ctx, subscriptionID)
	}
	args := m.Called(ctx, subscriptionID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portsrepo.PushSubscriptionRepository = (*MockSubscriptionRepository)(nil)
