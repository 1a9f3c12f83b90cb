package services

import (
	"context"
	"fmt"

	"github.com/norrapat/notihub/internal/core/domain"
	portssvc "github.com/norrapat/notihub/internal/core/ports/services"
	"github.com/norrapat/notihub/internal/platform/config"
	"github.com/norrapat/notihub/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

type GoogleOAuthService struct {
	oauthConfig *oauth2.Config
}

// NewGoogleOAuthService builds the Google login flow. The gmail.send scope is
// requested up front so the refresh token captured at login can later mint
// tokens for sending notification mail as this user.
func NewGoogleOAuthService(cfg *config.Config) *GoogleOAuthService {
	return &GoogleOAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
				"https://www.googleapis.com/auth/gmail.send",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// Ensure GoogleOAuthService implements portssvc.GoogleOAuthSvcFacade
var _ portssvc.GoogleOAuthSvcFacade = (*GoogleOAuthService)(nil)

func (s *GoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	return utils.GenerateSecureRandomString(16)
}

// GetLoginURL returns the consent URL. Offline access plus a forced consent
// prompt is the only combination under which Google reissues a refresh token
// for a returning user.
func (s *GoogleOAuthService) GetLoginURL(ctx context.Context, state string) string {
	return s.oauthConfig.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

func (s *GoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange google auth code: %w", err)
	}
	return token, nil
}

func (s *GoogleOAuthService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	svc, err := goauth2.NewService(ctx, option.WithTokenSource(s.oauthConfig.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create google userinfo client: %w", err)
	}
	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google user info: %w", err)
	}
	return &domain.GoogleUserInfo{
		ID:      info.Id,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}
