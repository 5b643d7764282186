package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"sosradar/internal/delivery/http/response"
	domainerrors "sosradar/internal/domain/errors"
	"sosradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// UpdateLocationRequest represents the request body for reporting a position
type UpdateLocationRequest struct {
	UserID     string  `json:"user_id" validate:"required"`
	ExternalID string  `json:"external_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Timestamp  string  `json:"timestamp"`
	DeviceType string  `json:"device_type"`
}

// LocationResponse represents a stored user position
type LocationResponse struct {
	UserID    string  `json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	UpdatedAt string  `json:"updated_at"`
}

// UpdateLocation handles reporting a user's latest position
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	var timestamp time.Time
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			return response.BadRequest(c, "INVALID_TIMESTAMP", "timestamp must be ISO-8601")
		}
		timestamp = parsed
	}

	location, err := h.locationUC.UpdateLocation(c.Request().Context(), &usecase.UpdateLocationInput{
		UserID:     req.UserID,
		ExternalID: req.ExternalID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		DeviceType: req.DeviceType,
		Timestamp:  timestamp,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LocationResponse{
		UserID:    location.UserID,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		UpdatedAt: location.UpdatedAt.UTC().Format(time.RFC3339),
	}, "Location updated")
}

// GetLocation handles retrieving a user's latest position
func (h *LocationHandler) GetLocation(c echo.Context) error {
	userID := c.Param("user_id")

	location, err := h.locationUC.GetLocation(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LocationResponse{
		UserID:    location.UserID,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		UpdatedAt: location.UpdatedAt.UTC().Format(time.RFC3339),
	}, "")
}

// NearbyUserResponse represents one proximity query result
type NearbyUserResponse struct {
	UserID         string  `json:"user_id"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DistanceMeters float64 `json:"distance_meters"`
}

// GetNearbyUsers handles proximity queries around a point
func (h *LocationHandler) GetNearbyUsers(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATE", "latitude must be a number")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATE", "longitude must be a number")
	}

	var radius float64
	if raw := c.QueryParam("radius_meters"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_RADIUS", "radius_meters must be a number")
		}
	}

	nearby, err := h.locationUC.NearbyUsers(c.Request().Context(), &usecase.NearbyQueryInput{
		UserID:       c.QueryParam("user_id"),
		Latitude:     lat,
		Longitude:    lon,
		RadiusMeters: radius,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	results := make([]NearbyUserResponse, 0, len(nearby))
	for _, user := range nearby {
		results = append(results, NearbyUserResponse{
			UserID:         user.Location.UserID,
			Latitude:       user.Location.Latitude,
			Longitude:      user.Location.Longitude,
			DistanceMeters: user.DistanceMeters,
		})
	}

	return response.Success(c, http.StatusOK, results, "")
}

// handleAppError handles application errors
func (h *LocationHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
