package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"sosradar/internal/delivery/http/response"
	"sosradar/internal/domain/entity"
	domainerrors "sosradar/internal/domain/errors"
	"sosradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler holds dependencies for alert-related handlers
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// TriggerSOSRequest represents the request body for raising an SOS alert
type TriggerSOSRequest struct {
	UserID       string  `json:"user_id" validate:"required"`
	ExternalID   string  `json:"external_id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
	Message      string  `json:"message"`
}

// TriggerSOSResponse is the wire contract for a dispatched alert. The
// recipients_count field is what callers key on; the rest is diagnostic.
type TriggerSOSResponse struct {
	SessionID       string `json:"session_id"`
	NotificationID  string `json:"notification_id,omitempty"`
	RecipientsCount int    `json:"recipients_count"`
	NearbyCount     int    `json:"nearby_count"`
}

// TriggerSOS handles raising an SOS alert
func (h *AlertHandler) TriggerSOS(c echo.Context) error {
	var req TriggerSOSRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.alertUC.TriggerAlert(c.Request().Context(), &usecase.TriggerAlertInput{
		UserID:       req.UserID,
		ExternalID:   req.ExternalID,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
		Message:      req.Message,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, TriggerSOSResponse{
		SessionID:       output.SessionID,
		NotificationID:  output.ProviderID,
		RecipientsCount: output.RecipientCount,
		NearbyCount:     output.NearbyCount,
	})
}

// CancelAlertRequest represents the request body for cancelling an alert
type CancelAlertRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Action string `json:"action"`
}

// CancelAlertResponse represents the result of a cancellation
type CancelAlertResponse struct {
	SessionID        string `json:"session_id"`
	Status           string `json:"status"`
	AlreadyCancelled bool   `json:"already_cancelled"`
}

// CancelAlert handles cancelling the user's alert
func (h *AlertHandler) CancelAlert(c echo.Context) error {
	var req CancelAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancel input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.alertUC.CancelAlert(c.Request().Context(), req.UserID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, CancelAlertResponse{
		SessionID:        output.SessionID,
		Status:           "cancelled",
		AlreadyCancelled: output.AlreadyCancelled,
	})
}

// RecordResponseRequest represents a responder's reaction to an alert
type RecordResponseRequest struct {
	SessionID    string `json:"session_id"`
	OriginatorID string `json:"originator_id"`
	ResponderID  string `json:"responder_id" validate:"required"`
	ActionID     string `json:"action_id" validate:"required"`
}

// RecordResponse handles recording a responder action
func (h *AlertHandler) RecordResponse(c echo.Context) error {
	var req RecordResponseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.alertUC.RecordResponse(c.Request().Context(), &usecase.RecordResponseInput{
		SessionID:    req.SessionID,
		OriginatorID: req.OriginatorID,
		ResponderID:  req.ResponderID,
		ActionID:     req.ActionID,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sessionResponse(session), "Response recorded")
}

// GetHistory handles listing a user's past alerts
func (h *AlertHandler) GetHistory(c echo.Context) error {
	userID := c.Param("user_id")

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be an integer")
		}
		limit = parsed
	}

	sessions, err := h.alertUC.GetHistory(c.Request().Context(), userID, limit)
	if err != nil {
		return h.handleAppError(c, err)
	}

	results := make([]SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		results = append(results, sessionResponse(session))
	}

	return response.Success(c, http.StatusOK, results, "")
}

// GetStats handles reporting aggregate counters
func (h *AlertHandler) GetStats(c echo.Context) error {
	stats, err := h.alertUC.Stats(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// SessionResponse represents an alert session on the wire
type SessionResponse struct {
	SessionID       string             `json:"session_id"`
	OriginatorID    string             `json:"originator_id"`
	State           string             `json:"state"`
	Latitude        float64            `json:"latitude"`
	Longitude       float64            `json:"longitude"`
	RadiusMeters    int                `json:"radius_meters"`
	Message         string             `json:"message"`
	RecipientsCount int                `json:"recipients_count"`
	Responses       []ResponseResponse `json:"responses,omitempty"`
	CreatedAt       string             `json:"created_at"`
	CancelledAt     string             `json:"cancelled_at,omitempty"`
}

// ResponseResponse represents one recorded responder action on the wire
type ResponseResponse struct {
	ResponderID string `json:"responder_id"`
	ActionID    string `json:"action_id"`
	RecordedAt  string `json:"recorded_at"`
}

func sessionResponse(session *entity.AlertSession) SessionResponse {
	out := SessionResponse{
		SessionID:       session.SessionID,
		OriginatorID:    session.OriginatorID,
		State:           string(session.State),
		Latitude:        session.Latitude,
		Longitude:       session.Longitude,
		RadiusMeters:    session.RadiusMeters,
		Message:         session.Message,
		RecipientsCount: session.RecipientCount,
		CreatedAt:       session.CreatedAt.UTC().Format(time.RFC3339),
	}
	if session.CancelledAt != nil {
		out.CancelledAt = session.CancelledAt.UTC().Format(time.RFC3339)
	}
	for _, resp := range session.Responses {
		out.Responses = append(out.Responses, ResponseResponse{
			ResponderID: resp.ResponderID,
			ActionID:    string(resp.Action),
			RecordedAt:  resp.RecordedAt.UTC().Format(time.RFC3339),
		})
	}

	return out
}

// handleAppError handles application errors
func (h *AlertHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
