// Package impl contains the use-case implementations holding the
// application's business rules.
package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"dairyops/config"
	deliverycontext "dairyops/internal/delivery/context"
	"dairyops/internal/domain/entity"
	domainerrors "dairyops/internal/domain/errors"
	"dairyops/internal/domain/repository"
	"dairyops/internal/errors"
	"dairyops/internal/usecase"
	"dairyops/internal/util"

	"go.uber.org/fx"
)

const defaultActiveWindowDays = 30

type customerService struct {
	orderRepo    repository.OrderRepository
	profileRepo  repository.ProfileRepository
	logger       *slog.Logger
	activeWindow time.Duration
	now          func() time.Time
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProfileRepo repository.ProfileRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCustomerService creates a new customer projection service instance
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	windowDays := defaultActiveWindowDays
	if params.Config != nil && params.Config.Dashboard != nil && params.Config.Dashboard.ActiveWindowDays > 0 {
		windowDays = params.Config.Dashboard.ActiveWindowDays
	}

	return &customerService{
		orderRepo:    params.OrderRepo,
		profileRepo:  params.ProfileRepo,
		logger:       params.Logger,
		activeWindow: time.Duration(windowDays) * 24 * time.Hour,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListCustomers aggregates, filters and sorts the customer projection.
// The projection is recomputed from fresh snapshots on every call; nothing
// is cached between calls.
func (s *customerService) ListCustomers(ctx context.Context, query usecase.CustomerQuery) ([]*entity.Customer, error) {
	customers, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	filtered := applyCustomerQuery(customers, query, s.now())
	s.log(ctx).Debug("Listed customers",
		slog.Int("total", len(customers)), slog.Int("matched", len(filtered)))

	return filtered, nil
}

// ExportCustomersCSV renders the filtered projection as a CSV file.
func (s *customerService) ExportCustomersCSV(ctx context.Context, query usecase.CustomerQuery) (*usecase.CustomerExport, error) {
	customers, err := s.ListCustomers(ctx, query)
	if err != nil {
		return nil, err
	}

	export := &usecase.CustomerExport{
		Filename: "customers-" + s.now().Format(time.DateOnly) + ".csv",
		Data:     renderCustomersCSV(customers),
	}
	s.log(ctx).Info("Exported customers",
		slog.String("filename", export.Filename), slog.Int("rows", len(customers)))

	return export, nil
}

func (s *customerService) snapshot(ctx context.Context) ([]*entity.Customer, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		s.log(ctx).Error("Failed to list orders", slog.Any("error", err))

		return nil, errors.Wrap(errors.Join(domainerrors.ErrCustomerQueryFailed.WithDetails(err.Error()), err), "failed to list orders")
	}

	profiles, err := s.profileRepo.ListProfiles(ctx)
	if err != nil {
		s.log(ctx).Error("Failed to list profiles", slog.Any("error", err))

		return nil, errors.Wrap(errors.Join(domainerrors.ErrCustomerQueryFailed.WithDetails(err.Error()), err), "failed to list profiles")
	}

	return aggregateCustomers(orders, profiles, s.now(), s.activeWindow), nil
}

// aggregateCustomers derives the customer projection from the order and
// profile snapshots. It is a pure two-pass fold keyed by phone number:
// the orders pass seeds and accumulates per-phone totals and date bounds,
// the overlay pass then patches contact details from matching profiles.
// A phone that appears in profiles but never in orders yields no customer.
func aggregateCustomers(orders []*entity.Order, profiles []*entity.UserProfile, now time.Time, activeWindow time.Duration) []*entity.Customer {
	byPhone := make(map[string]*entity.Customer, len(orders))
	phones := make([]string, 0, len(orders))

	for _, order := range orders {
		customer, seen := byPhone[order.Phone]
		if !seen {
			customer = &entity.Customer{
				Phone:          order.Phone,
				Name:           order.CustomerName,
				Address:        order.Address,
				FirstOrderDate: order.OrderDate,
				LastOrderDate:  order.OrderDate,
			}
			if order.MapLink != "" {
				customer.Location = &entity.CustomerLocation{MapLink: order.MapLink}
			}
			byPhone[order.Phone] = customer
			phones = append(phones, order.Phone)
		}

		customer.TotalOrders++
		if order.Status == entity.OrderStatusCompleted {
			customer.TotalSpent += order.TotalAmount
		}
		// Date bounds are min/max over all orders, independent of input order.
		if order.OrderDate.Before(customer.FirstOrderDate) {
			customer.FirstOrderDate = order.OrderDate
		}
		if order.OrderDate.After(customer.LastOrderDate) {
			customer.LastOrderDate = order.OrderDate
		}
	}

	cutoff := now.Add(-activeWindow)
	for _, customer := range byPhone {
		if customer.TotalOrders > 0 {
			customer.AverageOrderValue = customer.TotalSpent / float64(customer.TotalOrders)
		}

		customer.Status = entity.CustomerStatusInactive
		if customer.LastOrderDate.After(cutoff) {
			customer.Status = entity.CustomerStatusActive
		}
	}

	for _, profile := range profiles {
		customer, ok := byPhone[profile.Phone]
		if !ok {
			continue
		}

		overlayProfile(customer, profile)
	}

	customers := make([]*entity.Customer, 0, len(phones))
	for _, phone := range phones {
		customers = append(customers, byPhone[phone])
	}

	return customers
}

// overlayProfile patches a derived customer with profile contact details.
// Email always wins; address and location are taken only from the default
// saved address (or the first one if none is flagged) and only when that
// address is non-empty. A profile with no addresses never overwrites
// anything beyond email.
func overlayProfile(customer *entity.Customer, profile *entity.UserProfile) {
	customer.Email = profile.Email

	addr, ok := profile.DefaultAddress()
	if !ok {
		return
	}

	if addr.FullAddress != "" {
		customer.Address = addr.FullAddress
	}

	if addr.Latitude != 0 || addr.Longitude != 0 || addr.MapLink != "" {
		location := &entity.CustomerLocation{
			Latitude:  addr.Latitude,
			Longitude: addr.Longitude,
			MapLink:   addr.MapLink,
		}
		if location.MapLink == "" {
			location.MapLink = profile.LiveLocationLink
		}
		customer.Location = location
	}
}

// applyCustomerQuery filters and then sorts the projection, returning a new
// slice; the input is never mutated.
func applyCustomerQuery(customers []*entity.Customer, query usecase.CustomerQuery, now time.Time) []*entity.Customer {
	filtered := filterCustomers(customers, query, now)
	sortCustomers(filtered, query.SortBy)

	return filtered
}

func filterCustomers(customers []*entity.Customer, query usecase.CustomerQuery, now time.Time) []*entity.Customer {
	search := strings.ToLower(strings.TrimSpace(query.Search))

	filtered := make([]*entity.Customer, 0, len(customers))
	for _, customer := range customers {
		if search != "" && !matchesSearch(customer, search) {
			continue
		}

		switch query.Status {
		case usecase.StatusFilterActive:
			if customer.Status != entity.CustomerStatusActive {
				continue
			}
		case usecase.StatusFilterInactive:
			if customer.Status != entity.CustomerStatusInactive {
				continue
			}
		}

		if !util.InPeriodAt(customer.LastOrderDate, now, query.Period) {
			continue
		}

		filtered = append(filtered, customer)
	}

	return filtered
}

func matchesSearch(customer *entity.Customer, search string) bool {
	return strings.Contains(strings.ToLower(customer.Name), search) ||
		strings.Contains(strings.ToLower(customer.Phone), search) ||
		strings.Contains(strings.ToLower(customer.Address), search)
}

func sortCustomers(customers []*entity.Customer, sortBy string) {
	switch sortBy {
	case usecase.SortByTotalSpent:
		sort.SliceStable(customers, func(i, j int) bool {
			return customers[i].TotalSpent > customers[j].TotalSpent
		})
	case usecase.SortByTotalOrders:
		sort.SliceStable(customers, func(i, j int) bool {
			return customers[i].TotalOrders > customers[j].TotalOrders
		})
	case usecase.SortByLastOrder:
		sort.SliceStable(customers, func(i, j int) bool {
			return customers[i].LastOrderDate.After(customers[j].LastOrderDate)
		})
	default:
		sort.SliceStable(customers, func(i, j int) bool {
			return strings.ToLower(customers[i].Name) < strings.ToLower(customers[j].Name)
		})
	}
}
