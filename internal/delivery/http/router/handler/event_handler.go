package handler

import (
	"log/slog"
	"net/http"

	"sosradar/internal/delivery/http/response"
	"sosradar/internal/domain/service"
	"sosradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// EventHandler holds dependencies for provider event handlers
type EventHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// ClickEventRequest mirrors the provider's notification click payload
type ClickEventRequest struct {
	UserID         string `json:"user_id" validate:"required"`
	ActionID       string `json:"action_id"`
	AdditionalData struct {
		AlertType string  `json:"alert_type"`
		SenderID  string  `json:"sender_id"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"additional_data"`
}

// HandleClick processes a notification click reported by a client. Clicks
// that do not map to a known response action are acknowledged and dropped.
func (h *EventHandler) HandleClick(c echo.Context) error {
	var req ClickEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid click event")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.alertUC.HandleClickEvent(c.Request().Context(), &service.ClickEvent{
		AlertType:   req.AdditionalData.AlertType,
		SenderID:    req.AdditionalData.SenderID,
		Latitude:    req.AdditionalData.Latitude,
		Longitude:   req.AdditionalData.Longitude,
		ActionID:    req.ActionID,
		ResponderID: req.UserID,
	})
	if err != nil {
		h.logger.Warn("click event processing failed",
			slog.String("sender_id", req.AdditionalData.SenderID),
			slog.String("error", err.Error()),
		)
	}

	// The provider gets a 2xx either way; click delivery is fire-and-forget.
	return c.NoContent(http.StatusNoContent)
}
