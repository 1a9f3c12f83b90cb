package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/norrapat/notihub/internal/apperrors"
	"github.com/norrapat/notihub/internal/core/domain"
	portsrepo "github.com/norrapat/notihub/internal/core/ports/repositories"
	portssvc "github.com/norrapat/notihub/internal/core/ports/services"
	"github.com/norrapat/notihub/internal/dto"
	"github.com/norrapat/notihub/internal/middleware"
)

// DispatchService fans one operator broadcast out to the channel senders.
// The dispatch is fire-and-forget per target: validation failures abort
// before any provider is touched, delivery failures only shape the counts.
type DispatchService struct {
	userRepo portsrepo.UserRepository
	senders  map[domain.Channel]portssvc.ChannelSender
}

func NewDispatchService(userRepo portsrepo.UserRepository, senders ...portssvc.ChannelSender) *DispatchService {
	byChannel := make(map[domain.Channel]portssvc.ChannelSender, len(senders))
	for _, s := range senders {
		byChannel[s.Channel()] = s
	}
	return &DispatchService{userRepo: userRepo, senders: byChannel}
}

// Ensure DispatchService implements portssvc.DispatchSvcFacade
var _ portssvc.DispatchSvcFacade = (*DispatchService)(nil)

func (s *DispatchService) Dispatch(ctx context.Context, req dto.DispatchRequest) (*domain.DispatchResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	d := req.ToDomain()
	if err := validateDispatch(d); err != nil {
		return nil, err
	}

	// Resolve senders up front; bailing out mid-loop would abandon
	// already-spawned goroutines.
	channels := d.Channels.Enabled()
	for _, ch := range channels {
		if _, ok := s.senders[ch]; !ok {
			return nil, fmt.Errorf("no sender registered for channel %q", ch)
		}
	}

	users, err := s.userRepo.FindUsersByIDs(ctx, d.RecipientIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dispatch recipients: %w", err)
	}

	results := make([]domain.ChannelResult, len(channels))
	var wg sync.WaitGroup
	for i, ch := range channels {
		sender := s.senders[ch]

		targets := FilterTargets(ch, users)
		results[i] = domain.ChannelResult{Channel: ch, Attempted: len(targets)}
		if len(targets) == 0 {
			continue
		}

		wg.Add(1)
		go func(i int, sender portssvc.ChannelSender, targets []domain.Target) {
			defer wg.Done()
			outcomes := sender.Send(ctx, targets, d.Message)
			results[i].Attempted = len(outcomes)
			for _, o := range outcomes {
				if o.Err != nil {
					results[i].Failed++
				} else {
					results[i].Sent++
				}
			}
		}(i, sender, targets)
	}
	wg.Wait()

	result := &domain.DispatchResult{Channels: results}
	for _, r := range results {
		result.SentCount += r.Sent
	}
	logger.Info("dispatch completed",
		"recipients", len(d.RecipientIDs),
		"channels", len(channels),
		"sent", result.SentCount,
	)
	return result, nil
}

func validateDispatch(d domain.DispatchRequest) error {
	if strings.TrimSpace(d.Message) == "" {
		return fmt.Errorf("message must not be blank: %w", apperrors.ErrValidation)
	}
	if len(d.RecipientIDs) == 0 {
		return fmt.Errorf("at least one recipient is required: %w", apperrors.ErrValidation)
	}
	if d.Channels.None() {
		return fmt.Errorf("at least one channel must be enabled: %w", apperrors.ErrValidation)
	}
	return nil
}
