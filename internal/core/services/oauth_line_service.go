package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/norrapat/notihub/internal/core/domain"
	portssvc "github.com/norrapat/notihub/internal/core/ports/services"
	"github.com/norrapat/notihub/internal/platform/config"
	"github.com/norrapat/notihub/internal/utils"
	"golang.org/x/oauth2"
)

// lineEndpoint is the LINE Login v2.1 OAuth endpoint pair.
var lineEndpoint = oauth2.Endpoint{
	AuthURL:  "https://access.line.me/oauth2/v2.1/authorize",
	TokenURL: "https://api.line.me/oauth2/v2.1/token",
}

const lineProfileURL = "https://api.line.me/v2/profile"

type LineOAuthService struct {
	oauthConfig *oauth2.Config
	profileURL  string
}

func NewLineOAuthService(cfg *config.Config) *LineOAuthService {
	return &LineOAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.LineClientID,
			ClientSecret: cfg.LineClientSecret,
			RedirectURL:  cfg.LineRedirectURL,
			Scopes:       []string{"openid", "profile"},
			Endpoint:     lineEndpoint,
		},
		profileURL: lineProfileURL,
	}
}

// Ensure LineOAuthService implements portssvc.LineOAuthSvcFacade
var _ portssvc.LineOAuthSvcFacade = (*LineOAuthService)(nil)

func (s *LineOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	return utils.GenerateSecureRandomString(16)
}

// GetLoginURL returns the LINE authorize URL. bot_prompt=normal offers the
// user the option to friend the messaging bot during login, which is what
// makes them reachable over the LINE channel afterwards.
func (s *LineOAuthService) GetLoginURL(ctx context.Context, state string) string {
	return s.oauthConfig.AuthCodeURL(state,
		oauth2.SetAuthURLParam("bot_prompt", "normal"),
	)
}

func (s *LineOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange line auth code: %w", err)
	}
	return token, nil
}

func (s *LineOAuthService) GetProfile(ctx context.Context, token *oauth2.Token) (*domain.LineProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build line profile request: %w", err)
	}
	resp, err := s.oauthConfig.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch line profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("line profile endpoint returned status %d", resp.StatusCode)
	}

	var profile domain.LineProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode line profile: %w", err)
	}
	return &profile, nil
}
