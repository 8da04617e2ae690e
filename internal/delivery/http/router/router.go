// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dairyops/internal/delivery/http/router/handler"
	"dairyops/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler     *handler.CustomerHandler
	SubscriptionHandler *handler.SubscriptionHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler     *handler.CustomerHandler
	subscriptionHandler *handler.SubscriptionHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler:     params.CustomerHandler,
		subscriptionHandler: params.SubscriptionHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.requestIDMiddleware.Process)

	customerGroup := api.Group("/customers")
	{
		customerGroup.GET("", r.customerHandler.ListCustomers)
		customerGroup.GET("/export", r.customerHandler.ExportCustomers)
	}

	subscriptionGroup := api.Group("/subscriptions")
	{
		subscriptionGroup.POST("", r.subscriptionHandler.CreateSubscription)
		subscriptionGroup.GET("", r.subscriptionHandler.ListSubscriptions)
		subscriptionGroup.GET("/stats", r.subscriptionHandler.GetStats)
		subscriptionGroup.GET("/:id", r.subscriptionHandler.GetSubscription)
		subscriptionGroup.PATCH("/:id", r.subscriptionHandler.UpdateSubscription)
		subscriptionGroup.PATCH("/:id/status", r.subscriptionHandler.SetStatus)
		subscriptionGroup.PATCH("/:id/payment-status", r.subscriptionHandler.SetPaymentStatus)
		subscriptionGroup.DELETE("/:id", r.subscriptionHandler.DeleteSubscription)
	}
}
