package services

import (
	"context"

	"github.com/norrapat/notihub/internal/core/domain"
	"github.com/norrapat/notihub/internal/dto"
)

// SubscriptionSvcFacade manages browser push subscriptions.
type SubscriptionSvcFacade interface {
	// RegisterSubscription stores a browser push registration for a user.
	RegisterSubscription(ctx context.Context, req dto.SubscribeRequest) (*domain.PushSubscription, error)
}
