package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/norrapat/notihub/internal/apperrors"
	"github.com/norrapat/notihub/internal/core/domain"
	portsrepo "github.com/norrapat/notihub/internal/core/ports/repositories"
	portssvc "github.com/norrapat/notihub/internal/core/ports/services"
	"github.com/norrapat/notihub/internal/middleware"
	"github.com/norrapat/notihub/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const emailSubject = "New notification"

// gmailAPI is the narrow slice of the Gmail send path the sender needs;
// tests substitute it to avoid real token exchanges.
type gmailAPI interface {
	SendRaw(ctx context.Context, refreshToken string, raw []byte) error
}

type googleGmailAPI struct {
	oauthConfig *oauth2.Config
}

func (g *googleGmailAPI) SendRaw(ctx context.Context, refreshToken string, raw []byte) error {
	ts := g.oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	svc, err := gmail.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return fmt.Errorf("failed to create gmail client: %w", err)
	}
	msg := &gmail.Message{Raw: base64.RawURLEncoding.EncodeToString(raw)}
	if _, err := svc.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gmail send failed: %w", err)
	}
	return nil
}

// EmailSender delivers over Gmail using each recipient's own stored refresh
// token, the one captured with the gmail.send scope at Google login. A user
// without a stored token is a permanent per-user failure; it never blocks
// their siblings.
type EmailSender struct {
	userRepo    portsrepo.UserRepository
	api         gmailAPI
	sendTimeout time.Duration
}

func NewEmailSender(cfg *config.Config, userRepo portsrepo.UserRepository) *EmailSender {
	return &EmailSender{
		userRepo: userRepo,
		api: &googleGmailAPI{
			oauthConfig: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				Scopes:       []string{"https://www.googleapis.com/auth/gmail.send"},
			},
		},
		sendTimeout: cfg.DispatchSendTimeout,
	}
}

// Ensure EmailSender implements portssvc.ChannelSender
var _ portssvc.ChannelSender = (*EmailSender)(nil)

func (s *EmailSender) Channel() domain.Channel {
	return domain.ChannelEmail
}

func (s *EmailSender) Send(ctx context.Context, targets []domain.Target, message string) []domain.SendOutcome {
	logger := middleware.GetLoggerFromCtx(ctx)

	userIDs := make([]string, 0, len(targets))
	for _, t := range targets {
		userIDs = append(userIDs, t.UserID)
	}
	tokensByUser := map[string]string{}
	users, err := s.userRepo.FindUsersByIDs(ctx, userIDs)
	if err != nil {
		// Without tokens no target can succeed; report the same failure for all.
		outcomes := make([]domain.SendOutcome, len(targets))
		for i, t := range targets {
			outcomes[i] = domain.SendOutcome{Channel: domain.ChannelEmail, UserID: t.UserID, Err: err}
		}
		return outcomes
	}
	for _, u := range users {
		tokensByUser[u.UserID] = u.GoogleRefreshToken
	}

	outcomes := make([]domain.SendOutcome, len(targets))
	var wg sync.WaitGroup
	for i, t := range targets {
		wg.Add(1)
		go func(i int, t domain.Target) {
			defer wg.Done()
			outcomes[i] = domain.SendOutcome{Channel: domain.ChannelEmail, UserID: t.UserID}

			token := tokensByUser[t.UserID]
			if token == "" {
				outcomes[i].Err = apperrors.ErrNoRefreshToken
				logger.Warn("email target skipped, no refresh token", "user_id", t.UserID)
				return
			}

			sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
			defer cancel()
			if err := s.api.SendRaw(sendCtx, token, buildMIMEMessage(t.Address, emailSubject, message)); err != nil {
				outcomes[i].Err = err
				logger.Warn("email send failed", "user_id", t.UserID, "error", err)
			}
		}(i, t)
	}
	wg.Wait()
	return outcomes
}

// buildMIMEMessage assembles the raw RFC 2822 message Gmail expects. The
// subject is MIME-encoded-word wrapped so non-ASCII text survives transport.
func buildMIMEMessage(to, subject, body string) []byte {
	encodedSubject := "=?utf-8?B?" + base64.StdEncoding.EncodeToString([]byte(subject)) + "?="
	var b strings.Builder
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Subject: " + encodedSubject + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
