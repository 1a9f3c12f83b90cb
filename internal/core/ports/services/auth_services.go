package services

import (
	"context"
	"time"

	"github.com/norrapat/notihub/internal/core/domain"
	"golang.org/x/oauth2"
)

// TokenSvcFacade handles session token generation and validation.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed session JWT for the given user and
	// returns it with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// OAuthFlowSvc is the shared shape of both third-party login flows: build a
// redirect URL, exchange the callback code for tokens.
type OAuthFlowSvc interface {
	// GenerateStateString creates a CSRF token for the OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetLoginURL returns the provider URL to redirect the user to.
	GetLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
}

// GoogleOAuthSvcFacade is the Google login flow.
type GoogleOAuthSvcFacade interface {
	OAuthFlowSvc

	// GetUserInfo fetches the Google profile for the exchanged token.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
}

// LineOAuthSvcFacade is the LINE login flow.
type LineOAuthSvcFacade interface {
	OAuthFlowSvc

	// GetProfile fetches the LINE profile for the exchanged token.
	GetProfile(ctx context.Context, token *oauth2.Token) (*domain.LineProfile, error)
}
