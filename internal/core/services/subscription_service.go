package services

import (
	"context"
	"fmt"
	"time"

	"github.com/norrapat/notihub/internal/core/domain"
	portsrepo "github.com/norrapat/notihub/internal/core/ports/repositories"
	portssvc "github.com/norrapat/notihub/internal/core/ports/services"
	"github.com/norrapat/notihub/internal/dto"
	"github.com/norrapat/notihub/internal/middleware"
	"github.com/google/uuid"
)

type SubscriptionService struct {
	userRepo portsrepo.UserRepository
	subRepo  portsrepo.PushSubscriptionRepository
}

func NewSubscriptionService(userRepo portsrepo.UserRepository, subRepo portsrepo.PushSubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{userRepo: userRepo, subRepo: subRepo}
}

// Ensure SubscriptionService implements portssvc.SubscriptionSvcFacade
var _ portssvc.SubscriptionSvcFacade = (*SubscriptionService)(nil)

// RegisterSubscription stores a browser push registration. The user must
// exist; a re-registration of a known endpoint re-activates it rather than
// creating a duplicate.
func (s *SubscriptionService) RegisterSubscription(ctx context.Context, req dto.SubscribeRequest) (*domain.PushSubscription, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("failed to resolve subscription owner: %w", err)
	}

	sub := domain.PushSubscription{
		SubscriptionID: uuid.NewString(),
		UserID:         req.UserID,
		Endpoint:       req.Subscription.Endpoint,
		P256dhKey:      req.Subscription.Keys.P256dh,
		AuthKey:        req.Subscription.Keys.Auth,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}

	// On an endpoint conflict the row keeps its original id; report that one,
	// not the freshly minted candidate.
	storedID, err := s.subRepo.SaveSubscription(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to store push subscription: %w", err)
	}
	sub.SubscriptionID = storedID

	logger.Info("push subscription registered", "user_id", req.UserID, "subscription_id", sub.SubscriptionID)
	return &sub, nil
}
