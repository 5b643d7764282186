// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sosradar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler *handler.LocationHandler
	AlertHandler    *handler.AlertHandler
	EventHandler    *handler.EventHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler *handler.LocationHandler
	alertHandler    *handler.AlertHandler
	eventHandler    *handler.EventHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler: params.LocationHandler,
		alertHandler:    params.AlertHandler,
		eventHandler:    params.EventHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Location routes
	userGroup := e.Group("/users")
	{
		userGroup.POST("/location", r.locationHandler.UpdateLocation)
		userGroup.GET("/:user_id/location", r.locationHandler.GetLocation)
		userGroup.GET("/nearby", r.locationHandler.GetNearbyUsers)
	}

	// Alert routes
	alertGroup := e.Group("/alerts")
	{
		alertGroup.POST("/sos", r.alertHandler.TriggerSOS)
		alertGroup.POST("/cancel", r.alertHandler.CancelAlert)
		alertGroup.POST("/response", r.alertHandler.RecordResponse)
		alertGroup.GET("/history/:user_id", r.alertHandler.GetHistory)
	}

	// Provider click events
	e.POST("/events/click", r.eventHandler.HandleClick)

	// Aggregate counters
	e.GET("/stats", r.alertHandler.GetStats)
}
