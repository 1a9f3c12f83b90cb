package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/norrapat/notihub/internal/core/domain"
	portsrepo "github.com/norrapat/notihub/internal/core/ports/repositories"
	portssvc "github.com/norrapat/notihub/internal/core/ports/services"
	"github.com/norrapat/notihub/internal/middleware"
	"github.com/norrapat/notihub/internal/platform/config"
)

const pushDefaultTitle = "แจ้งเตือนใหม่"

// pushPayload is the notification shape the dashboard's service worker
// expects to parse out of a push event.
type pushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// webPusher performs one Web Push delivery and reports the provider's HTTP
// status; tests substitute it.
type webPusher interface {
	Push(ctx context.Context, sub *webpush.Subscription, payload []byte) (int, error)
}

type vapidWebPusher struct {
	options webpush.Options
}

func (p *vapidWebPusher) Push(ctx context.Context, sub *webpush.Subscription, payload []byte) (int, error) {
	opts := p.options
	resp, err := webpush.SendNotificationWithContext(ctx, payload, sub, &opts)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// PushSender delivers over Web Push. Targets carry only user ids; the sender
// resolves each user's active subscriptions itself and sends to every one.
// Endpoints the push service reports as permanently gone (404/410) are
// deleted on the spot, so dead registrations heal out of the store.
type PushSender struct {
	subRepo     portsrepo.PushSubscriptionRepository
	pusher      webPusher
	clickURL    string
	sendTimeout time.Duration
}

func NewPushSender(cfg *config.Config, subRepo portsrepo.PushSubscriptionRepository) *PushSender {
	return &PushSender{
		subRepo: subRepo,
		pusher: &vapidWebPusher{
			options: webpush.Options{
				Subscriber:      cfg.VAPIDSubscriber,
				VAPIDPublicKey:  cfg.VAPIDPublicKey,
				VAPIDPrivateKey: cfg.VAPIDPrivateKey,
				TTL:             60,
			},
		},
		clickURL:    cfg.FrontendBaseURL,
		sendTimeout: cfg.DispatchSendTimeout,
	}
}

// Ensure PushSender implements portssvc.ChannelSender
var _ portssvc.ChannelSender = (*PushSender)(nil)

func (s *PushSender) Channel() domain.Channel {
	return domain.ChannelPush
}

func (s *PushSender) Send(ctx context.Context, targets []domain.Target, message string) []domain.SendOutcome {
	logger := middleware.GetLoggerFromCtx(ctx)

	payload, err := json.Marshal(pushPayload{Title: pushDefaultTitle, Body: message, URL: s.clickURL})
	if err != nil {
		outcomes := make([]domain.SendOutcome, len(targets))
		for i, t := range targets {
			outcomes[i] = domain.SendOutcome{Channel: domain.ChannelPush, UserID: t.UserID, Err: err}
		}
		return outcomes
	}

	var mu sync.Mutex
	outcomes := []domain.SendOutcome{}
	var wg sync.WaitGroup

	for _, t := range targets {
		wg.Add(1)
		go func(t domain.Target) {
			defer wg.Done()

			subs, err := s.subRepo.FindActiveSubscriptionsByUserID(ctx, t.UserID)
			if err != nil {
				logger.Warn("failed to load push subscriptions", "user_id", t.UserID, "error", err)
				mu.Lock()
				outcomes = append(outcomes, domain.SendOutcome{Channel: domain.ChannelPush, UserID: t.UserID, Err: err})
				mu.Unlock()
				return
			}
			// A user with no registered browsers contributes nothing, not a
			// failure.
			for _, sub := range subs {
				outcome := s.sendToSubscription(ctx, sub, payload)
				mu.Lock()
				outcomes = append(outcomes, outcome)
				mu.Unlock()
			}
		}(t)
	}
	wg.Wait()
	return outcomes
}

func (s *PushSender) sendToSubscription(ctx context.Context, sub domain.PushSubscription, payload []byte) domain.SendOutcome {
	logger := middleware.GetLoggerFromCtx(ctx)
	outcome := domain.SendOutcome{Channel: domain.ChannelPush, UserID: sub.UserID}

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	status, err := s.pusher.Push(sendCtx, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dhKey,
			Auth:   sub.AuthKey,
		},
	}, payload)
	if err != nil {
		outcome.Err = err
		logger.Warn("push send failed", "user_id", sub.UserID, "subscription_id", sub.SubscriptionID, "error", err)
		return outcome
	}

	switch {
	case status == http.StatusNotFound || status == http.StatusGone:
		// The endpoint is permanently dead; prune it so future dispatches
		// stop attempting it.
		if delErr := s.subRepo.DeleteSubscription(ctx, sub.SubscriptionID); delErr != nil {
			logger.Warn("failed to delete dead push subscription", "subscription_id", sub.SubscriptionID, "error", delErr)
		} else {
			logger.Info("deleted dead push subscription", "subscription_id", sub.SubscriptionID, "status", status)
		}
		outcome.Err = fmt.Errorf("push endpoint gone (status %d)", status)
	case status >= 300:
		outcome.Err = fmt.Errorf("push service returned status %d", status)
		logger.Warn("push send rejected", "subscription_id", sub.SubscriptionID, "status", status)
	}
	return outcome
}
