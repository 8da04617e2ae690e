package handler

import (
	"log/slog"
	"net/http"

	"dairyops/internal/delivery/http/response"
	"dairyops/internal/domain/entity"
	"dairyops/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// SetStatusRequest represents the request body for a status transition
type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetPaymentStatusRequest represents the request body for a payment status transition
type SetPaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
}

// CreateSubscription handles creating a new subscription
func (h *SubscriptionHandler) CreateSubscription(c echo.Context) error {
	var req usecase.CreateSubscriptionInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	subscription, err := h.subscriptionUC.CreateSubscription(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, subscription, "Subscription created successfully")
}

// UpdateSubscription handles a partial subscription update
func (h *SubscriptionHandler) UpdateSubscription(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	var req usecase.UpdateSubscriptionInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	subscription, err := h.subscriptionUC.UpdateSubscription(c.Request().Context(), id, req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, subscription, "Subscription updated successfully")
}

// SetStatus handles a subscription status transition
func (h *SubscriptionHandler) SetStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Status is required")
	}

	if err := h.subscriptionUC.SetStatus(c.Request().Context(), id, entity.SubscriptionStatus(req.Status)); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": req.Status}, "Subscription status updated successfully")
}

// SetPaymentStatus handles a payment status transition
func (h *SubscriptionHandler) SetPaymentStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	var req SetPaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Payment status is required")
	}

	if err := h.subscriptionUC.SetPaymentStatus(c.Request().Context(), id, entity.PaymentStatus(req.PaymentStatus)); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"payment_status": req.PaymentStatus}, "Payment status updated successfully")
}

// DeleteSubscription handles removing a subscription. The dashboard asks
// the operator to confirm before calling this endpoint.
func (h *SubscriptionHandler) DeleteSubscription(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	if err := h.subscriptionUC.DeleteSubscription(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Subscription deleted"}, "Subscription deleted successfully")
}

// GetSubscription handles retrieving a single subscription
func (h *SubscriptionHandler) GetSubscription(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	subscription, err := h.subscriptionUC.GetSubscription(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, subscription, "Subscription retrieved successfully")
}

// ListSubscriptions handles retrieving all subscriptions
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	subscriptions, err := h.subscriptionUC.ListSubscriptions(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, subscriptions, "Subscriptions retrieved successfully")
}

// GetStats handles retrieving the subscription summary for a period
func (h *SubscriptionHandler) GetStats(c echo.Context) error {
	stats, err := h.subscriptionUC.Stats(c.Request().Context(), c.QueryParam("period"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stats, "Subscription stats retrieved successfully")
}
