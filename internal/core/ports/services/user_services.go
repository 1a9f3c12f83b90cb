package services

import (
	"context"

	"github.com/norrapat/notihub/internal/core/domain"
	"github.com/norrapat/notihub/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves users newest-first.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// GetUsersByIDs resolves a recipient selection to user records.
	GetUsersByIDs(ctx context.Context, userIDs []string) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// RegisterUser creates a new credential-authenticated user.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// UpdateChannelFlags toggles a user's stored per-channel eligibility flags.
	UpdateChannelFlags(ctx context.Context, userID string, req dto.UpdateChannelsRequest, requestingUserID string) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication and OAuth linking.
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with username and password.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// LinkGoogleAccount refreshes an existing user matched by email with the
	// Google profile, storing a reissued refresh token when present.
	// Returns ErrAccountNotLinked when no user matches; it never creates one.
	LinkGoogleAccount(ctx context.Context, info domain.GoogleUserInfo, refreshToken string) (*domain.User, error)

	// LinkLineAccount refreshes an existing user matched by LINE user id with
	// the LINE profile and enables the LINE channel flag.
	// Returns ErrAccountNotLinked when no user matches; it never creates one.
	LinkLineAccount(ctx context.Context, profile domain.LineProfile) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
