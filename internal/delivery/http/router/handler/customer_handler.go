// Package handler contains the HTTP handlers for the dashboard API.
package handler

import (
	"log/slog"
	"net/http"

	"dairyops/internal/delivery/http/response"
	"dairyops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler holds dependencies for customer-projection handlers
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

func customerQueryFromRequest(c echo.Context) usecase.CustomerQuery {
	return usecase.CustomerQuery{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
		Period: c.QueryParam("period"),
		SortBy: c.QueryParam("sortBy"),
	}
}

// ListCustomers handles retrieving the filtered, sorted customer projection
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.customerUC.ListCustomers(c.Request().Context(), customerQueryFromRequest(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, customers, "Customers retrieved successfully")
}

// ExportCustomers handles downloading the customer projection as CSV
func (h *CustomerHandler) ExportCustomers(c echo.Context) error {
	export, err := h.customerUC.ExportCustomersCSV(c.Request().Context(), customerQueryFromRequest(c))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+export.Filename+`"`)

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", export.Data)
}
