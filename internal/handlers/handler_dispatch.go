package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/norrapat/notihub/internal/apperrors"
	portssvc "github.com/norrapat/notihub/internal/core/ports/services"
	"github.com/norrapat/notihub/internal/dto"
	"github.com/norrapat/notihub/internal/middleware"
	"github.com/norrapat/notihub/internal/utils"
	"github.com/gin-gonic/gin"
)

// DispatchHandler handles operator notification broadcasts.
type DispatchHandler struct {
	dispatchService portssvc.DispatchSvcFacade
	posthog         *utils.PosthogClientWrapper
}

// NewDispatchHandler creates a new DispatchHandler.
func NewDispatchHandler(ds portssvc.DispatchSvcFacade, posthog *utils.PosthogClientWrapper) *DispatchHandler {
	return &DispatchHandler{dispatchService: ds, posthog: posthog}
}

// registerDispatchRoutes sets up the dispatch route. Dispatches are rate
// limited per IP since each one fans out to external providers.
func registerDispatchRoutes(rg *gin.RouterGroup, ds portssvc.DispatchSvcFacade, posthog *utils.PosthogClientWrapper) {
	h := NewDispatchHandler(ds, posthog)

	rate, _ := limiter.NewRateFromFormatted("10-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	rg.POST("/notifications/dispatch", middleware.RateLimit(ipLimiter), h.Dispatch)
}

// Dispatch godoc
// @Summary Dispatch a notification
// @Description Fans a message out to the selected recipients over the enabled channels. Per-target delivery failures only shape the counts.
// @Tags notifications
// @Accept json
// @Produce json
// @Param dispatch body dto.DispatchRequest true "Dispatch payload"
// @Success 200 {object} dto.DispatchResponse
// @Failure 400 {object} dto.DispatchResponse
// @Failure 500 {object} dto.DispatchResponse
// @Security BearerAuth
// @Router /notifications/dispatch [post]
func (h *DispatchHandler) Dispatch(c *gin.Context) {
	var req dto.DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.DispatchResponse{Success: false, Error: "Invalid request body"})
		return
	}

	result, err := h.dispatchService.Dispatch(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.DispatchResponse{Success: false, Error: err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Dispatch failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.DispatchResponse{Success: false, Error: "Failed to dispatch notification"})
		return
	}

	if operatorID, ok := middleware.GetUserIDFromContext(c); ok && h.posthog.IsInitialized() {
		h.posthog.Enqueue(operatorID, "notification_dispatched", map[string]any{
			"recipients": len(req.RecipientIDs),
			"sent_count": result.SentCount,
		})
	}

	c.JSON(http.StatusOK, dto.ToDispatchResponse(result))
}
