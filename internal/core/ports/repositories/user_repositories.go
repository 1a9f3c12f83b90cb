package repositories

import (
	"context"
	"time"

	"github.com/norrapat/notihub/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser inserts a user, or updates the mutable profile fields when the
	// user already exists.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a non-deleted user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a non-deleted user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a non-deleted user by email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByLineUserID retrieves a non-deleted user by LINE user id.
	FindUserByLineUserID(ctx context.Context, lineUserID string) (*domain.User, error)

	// FindUsers retrieves users newest-first.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)

	// FindUsersByIDs retrieves the non-deleted users among the given ids.
	// Unknown ids are skipped, not errors.
	FindUsersByIDs(ctx context.Context, userIDs []string) ([]domain.User, error)

	// UpdateUser updates an existing user's mutable fields.
	UpdateUser(ctx context.Context, user domain.User) error

	// MarkUserDeleted soft-deletes a user.
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}
