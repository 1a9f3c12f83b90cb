package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/norrapat/notihub/internal/apperrors"
	portssvc "github.com/norrapat/notihub/internal/core/ports/services"
	"github.com/norrapat/notihub/internal/dto"
	"github.com/norrapat/notihub/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SubscriptionHandler handles browser push subscription registration.
type SubscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(ss portssvc.SubscriptionSvcFacade) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: ss}
}

// registerSubscriptionRoutes sets up the subscribe route. It is public: the
// browser registers its subscription right after account creation, before any
// session exists.
func registerSubscriptionRoutes(r *gin.Engine, ss portssvc.SubscriptionSvcFacade) {
	h := NewSubscriptionHandler(ss)
	r.POST("/api/v1/notifications/subscribe", h.Subscribe)
}

// Subscribe godoc
// @Summary Register push subscription
// @Description Stores a browser Web Push subscription for a user. Re-registering a known endpoint re-activates it.
// @Tags notifications
// @Accept json
// @Produce json
// @Param subscription body dto.SubscribeRequest true "Subscription payload"
// @Success 201 {object} dto.SubscribeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /notifications/subscribe [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	sub, err := h.subscriptionService.RegisterSubscription(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to register push subscription", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register subscription"})
		return
	}

	c.JSON(http.StatusCreated, dto.SubscribeResponse{SubscriptionID: sub.SubscriptionID})
}
