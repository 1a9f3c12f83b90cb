package services

import (
	"context"

	"github.com/norrapat/notihub/internal/core/domain"
	"github.com/norrapat/notihub/internal/dto"
)

// ChannelSender wraps one delivery provider. Send delivers message to every
// target of its channel and returns one outcome per attempted provider call;
// a failed target must never prevent attempts on its siblings. Senders are
// stateless across invocations.
type ChannelSender interface {
	Channel() domain.Channel
	Send(ctx context.Context, targets []domain.Target, message string) []domain.SendOutcome
}

// DispatchSvcFacade orchestrates one operator-initiated broadcast.
type DispatchSvcFacade interface {
	// Dispatch validates the request, resolves recipients, filters them per
	// enabled channel and fans out to the channel senders. Validation
	// failures return ErrValidation before any network call; per-target
	// delivery failures are aggregated into the result, never returned.
	Dispatch(ctx context.Context, req dto.DispatchRequest) (*domain.DispatchResult, error)
}
