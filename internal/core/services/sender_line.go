package services

import (
	"context"
	"fmt"
	"time"

	"github.com/norrapat/notihub/internal/core/domain"
	portssvc "github.com/norrapat/notihub/internal/core/ports/services"
	"github.com/norrapat/notihub/internal/middleware"
	"github.com/norrapat/notihub/internal/platform/config"
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// lineMulticastCap is the Messaging API's hard limit on recipients per
// multicast call.
const lineMulticastCap = 500

// lineMulticaster is the one Messaging API call the sender needs; tests
// substitute it.
type lineMulticaster interface {
	Multicast(ctx context.Context, to []string, message string) error
}

type lineBotMulticaster struct {
	client *linebot.Client
}

func (m *lineBotMulticaster) Multicast(ctx context.Context, to []string, message string) error {
	_, err := m.client.Multicast(to, linebot.NewTextMessage(message)).WithContext(ctx).Do()
	return err
}

// LineSender delivers over the LINE Messaging API. Unlike email and push it
// is batched, one multicast call covers up to 500 recipients, so a failed
// call fails every id in its batch.
type LineSender struct {
	api         lineMulticaster
	sendTimeout time.Duration
}

// NewLineSender builds the sender. When the Messaging API credentials are not
// configured the sender still constructs; every send then fails with the
// construction error, keeping the other channels of a dispatch alive.
func NewLineSender(cfg *config.Config) *LineSender {
	s := &LineSender{sendTimeout: cfg.DispatchSendTimeout}
	client, err := linebot.New(cfg.LineChannelSecret, cfg.LineMessagingToken)
	if err != nil {
		s.api = &unconfiguredMulticaster{err: err}
		return s
	}
	s.api = &lineBotMulticaster{client: client}
	return s
}

type unconfiguredMulticaster struct {
	err error
}

func (m *unconfiguredMulticaster) Multicast(ctx context.Context, to []string, message string) error {
	return fmt.Errorf("line messaging api not configured: %w", m.err)
}

// Ensure LineSender implements portssvc.ChannelSender
var _ portssvc.ChannelSender = (*LineSender)(nil)

func (s *LineSender) Channel() domain.Channel {
	return domain.ChannelLine
}

func (s *LineSender) Send(ctx context.Context, targets []domain.Target, message string) []domain.SendOutcome {
	logger := middleware.GetLoggerFromCtx(ctx)

	outcomes := make([]domain.SendOutcome, 0, len(targets))
	for start := 0; start < len(targets); start += lineMulticastCap {
		end := start + lineMulticastCap
		if end > len(targets) {
			end = len(targets)
		}
		batch := targets[start:end]

		ids := make([]string, len(batch))
		for i, t := range batch {
			ids[i] = t.Address
		}

		sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
		err := s.api.Multicast(sendCtx, ids, message)
		cancel()
		if err != nil {
			logger.Warn("line multicast failed", "batch_size", len(ids), "error", err)
		}

		for _, t := range batch {
			outcomes = append(outcomes, domain.SendOutcome{Channel: domain.ChannelLine, UserID: t.UserID, Err: err})
		}
	}
	return outcomes
}
