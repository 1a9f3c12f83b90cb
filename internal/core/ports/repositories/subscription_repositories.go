package repositories

import (
	"context"

	"github.com/norrapat/notihub/internal/core/domain"
)

// PushSubscriptionRepository defines persistence operations for browser push
// subscriptions.
type PushSubscriptionRepository interface {
	// SaveSubscription inserts a subscription; a re-registration of the same
	// endpoint re-activates the existing row. It returns the id of the stored
	// row, which on the conflict path is the existing one, not sub's.
	SaveSubscription(ctx context.Context, sub domain.PushSubscription) (string, error)

	// FindActiveSubscriptionsByUserID retrieves a user's active subscriptions.
	FindActiveSubscriptionsByUserID(ctx context.Context, userID string) ([]domain.PushSubscription, error)

	// DeleteSubscription removes a subscription. Deleting an id that no longer
	// exists is a no-op: concurrent dispatches may race on the same dead
	// endpoint.
	DeleteSubscription(ctx context.Context, subscriptionID string) error
}
