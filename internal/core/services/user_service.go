package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/norrapat/notihub/internal/apperrors"
	"github.com/norrapat/notihub/internal/core/domain"
	portsrepo "github.com/norrapat/notihub/internal/core/ports/repositories"
	portssvc "github.com/norrapat/notihub/internal/core/ports/services"
	"github.com/norrapat/notihub/internal/dto"
	"github.com/norrapat/notihub/internal/middleware"
	"github.com/norrapat/notihub/internal/utils"
	"github.com/google/uuid"
)

type UserService struct {
	userRepo portsrepo.UserRepository
}

func NewUserService(userRepo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Ensure UserService implements the full facade
var _ portssvc.UserSvcFacade = (*UserService)(nil)

// RegisterUser creates a credential-authenticated user. New accounts default
// to push enabled (a subscription can follow immediately) and email/LINE
// disabled until the corresponding identity is linked.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username %q is taken: %w", req.Username, apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	newUserID := uuid.NewString()
	user := domain.User{
		UserID:        newUserID,
		Username:      req.Username,
		PasswordHash:  hash,
		DisplayName:   req.Username,
		LoginProvider: domain.ProviderCredentials,

		CanReceiveEmail: false,
		CanReceiveLine:  false,
		CanReceivePush:  true,

		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("user registered", "user_id", user.UserID)
	return &user, nil
}

func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// LinkGoogleAccount matches an existing user by the verified Google email and
// refreshes their profile. It deliberately leaves CanReceiveEmail alone: a
// Google login proves the identity, enabling the channel stays an explicit
// operator or user choice. No user is ever created here.
func (s *UserService) LinkGoogleAccount(ctx context.Context, info domain.GoogleUserInfo, refreshToken string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrAccountNotLinked
		}
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	if info.Name != "" {
		user.DisplayName = info.Name
	}
	if info.Picture != "" {
		user.PictureURL = info.Picture
	}
	user.LoginProvider = domain.ProviderGoogle
	// Google only reissues the refresh token on a fresh consent; keep the
	// stored one unless a new one arrived.
	if refreshToken != "" {
		user.GoogleRefreshToken = refreshToken
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user after google login: %w", err)
	}

	logger.Info("google account linked", "user_id", user.UserID, "refresh_token_updated", refreshToken != "")
	return user, nil
}

// LinkLineAccount matches an existing user by LINE user id and refreshes
// their profile. Completing a LINE login enables the LINE flag, the user has
// demonstrably connected the account. No user is ever created here.
func (s *UserService) LinkLineAccount(ctx context.Context, profile domain.LineProfile) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByLineUserID(ctx, profile.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrAccountNotLinked
		}
		return nil, fmt.Errorf("failed to look up user by line user id: %w", err)
	}

	if profile.DisplayName != "" {
		user.DisplayName = profile.DisplayName
	}
	if profile.PictureURL != "" {
		user.PictureURL = profile.PictureURL
	}
	user.LoginProvider = domain.ProviderLine
	user.CanReceiveLine = true
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user after line login: %w", err)
	}

	logger.Info("line account linked", "user_id", user.UserID)
	return user, nil
}

// UpdateChannelFlags applies the provided flag changes. Omitted fields keep
// their stored value. Note the stored line flag is only half the story: the
// directory and dispatch both require a linked LINE id as well.
func (s *UserService) UpdateChannelFlags(ctx context.Context, userID string, req dto.UpdateChannelsRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for channel update: %w", err)
	}

	if req.Email != nil {
		user.CanReceiveEmail = *req.Email
	}
	if req.Line != nil {
		user.CanReceiveLine = *req.Line
	}
	if req.Push != nil {
		user.CanReceivePush = *req.Push
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update channel flags: %w", err)
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetUsersByIDs(ctx context.Context, userIDs []string) ([]domain.User, error) {
	users, err := s.userRepo.FindUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get users by ids: %w", err)
	}
	return users, nil
}
