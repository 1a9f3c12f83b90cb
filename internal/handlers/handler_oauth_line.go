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

// LineOAuthHandler handles the redirect-based LINE login flow.
type LineOAuthHandler struct {
	oauthService portssvc.LineOAuthSvcFacade
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// NewLineOAuthHandler creates a new LineOAuthHandler.
func NewLineOAuthHandler(
	oauthService portssvc.LineOAuthSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	cfg *config.Config,
) *LineOAuthHandler {
	return &LineOAuthHandler{
		oauthService: oauthService,
		userService:  userService,
		tokenService: tokenService,
		cfg:          cfg,
	}
}

func registerLineOAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewLineOAuthHandler(services.LineOAuth, services.User, services.Token, cfg)
	r.GET("/auth/line", h.RedirectToLine)
	r.GET("/auth/line/callback", h.CallbackLine)
}

// RedirectToLine godoc
// @Summary Start LINE login
// @Description Redirects the browser to the LINE Login consent screen.
// @Tags oauth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/line [get]
func (h *LineOAuthHandler) RedirectToLine(c *gin.Context) {
	state, err := h.oauthService.GenerateStateString(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start login"})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("oauth_state_line", state, oauthStateTTLSeconds, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.GetLoginURL(c.Request.Context(), state))
}

// CallbackLine godoc
// @Summary LINE login callback
// @Description Exchanges the code, links the LINE identity to an existing account and starts a session. Unknown accounts are sent back to registration.
// @Tags oauth
// @Success 307
// @Failure 400 {object} ErrorResponse
// @Router /auth/line/callback [get]
func (h *LineOAuthHandler) CallbackLine(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	expectedState, err := c.Cookie("oauth_state_line")
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("line callback state mismatch")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie("oauth_state_line", "", -1, "/", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing authorization code"})
		return
	}

	token, err := h.oauthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange line code", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
		return
	}

	profile, err := h.oauthService.GetProfile(ctx, token)
	if err != nil {
		logger.Error("Failed to fetch line profile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to fetch LINE profile"})
		return
	}

	user, err := h.userService.LinkLineAccount(ctx, *profile)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotLinked) {
			c.Redirect(http.StatusTemporaryRedirect, h.cfg.FrontendBaseURL+"/register?error=line_not_linked")
			return
		}
		logger.Error("Failed to link line account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to complete LINE login"})
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
