package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/norrapat/notihub/internal/apperrors"
	portssvc "github.com/norrapat/notihub/internal/core/ports/services"
	"github.com/norrapat/notihub/internal/middleware"
	"github.com/norrapat/notihub/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// oauthStateTTLSeconds bounds how long a login attempt's CSRF state stays
// valid.
const oauthStateTTLSeconds = 600

// GoogleOAuthHandler handles the redirect-based Google login flow.
type GoogleOAuthHandler struct {
	oauthService portssvc.GoogleOAuthSvcFacade
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	oauthService portssvc.GoogleOAuthSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	cfg *config.Config,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		oauthService: oauthService,
		userService:  userService,
		tokenService: tokenService,
		cfg:          cfg,
	}
}

func registerGoogleOAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Token, cfg)
	r.GET("/auth/google", h.RedirectToGoogle)
	r.GET("/auth/google/callback", h.CallbackGoogle)
}

// RedirectToGoogle godoc
// @Summary Start Google login
// @Description Redirects the browser to Google's consent screen.
// @Tags oauth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [get]
func (h *GoogleOAuthHandler) RedirectToGoogle(c *gin.Context) {
	state, err := h.oauthService.GenerateStateString(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start login"})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("oauth_state_google", state, oauthStateTTLSeconds, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.GetLoginURL(c.Request.Context(), state))
}

// CallbackGoogle godoc
// @Summary Google login callback
// @Description Exchanges the code, links the Google identity to an existing account and starts a session. Unknown accounts are sent back to registration.
// @Tags oauth
// @Success 307
// @Failure 400 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) CallbackGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	expectedState, err := c.Cookie("oauth_state_google")
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("google callback state mismatch")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie("oauth_state_google", "", -1, "/", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing authorization code"})
		return
	}

	token, err := h.oauthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange google code", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
		return
	}

	info, err := h.oauthService.GetUserInfo(ctx, token)
	if err != nil {
		logger.Error("Failed to fetch google user info", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to fetch Google profile"})
		return
	}

	user, err := h.userService.LinkGoogleAccount(ctx, *info, token.RefreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotLinked) {
			c.Redirect(http.StatusTemporaryRedirect, h.cfg.FrontendBaseURL+"/register?error=account_not_found")
			return
		}
		logger.Error("Failed to link google account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to complete Google login"})
		return
	}

	sessionToken, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to sign session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookieName, sessionToken, int(h.cfg.JWTExpiryDuration.Seconds()), "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.cfg.FrontendBaseURL)
}
