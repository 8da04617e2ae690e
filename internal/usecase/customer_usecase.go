// Package usecase defines the application's use-case interfaces.
package usecase

import (
	"context"

	"dairyops/internal/domain/entity"
)

// Customer sort keys accepted by CustomerQuery.SortBy.
const (
	SortByName        = "name"       // ascending, lexicographic; the default
	SortByTotalSpent  = "totalSpent" // descending
	SortByTotalOrders = "totalOrders" // descending
	SortByLastOrder   = "lastOrder"  // descending, most recent first
)

// Customer status filters accepted by CustomerQuery.Status.
const (
	StatusFilterAll      = "all"
	StatusFilterActive   = "active"
	StatusFilterInactive = "inactive"
)

// CustomerQuery describes the filter/sort view of the derived customer
// projection. Filtering composes before sorting; the underlying snapshot is
// never mutated.
type CustomerQuery struct {
	Search string // case-insensitive substring over name, phone, address
	Status string // all, active or inactive
	Period string // named period applied to the last order date
	SortBy string // one of the SortBy* keys
}

// CustomerExport is a rendered CSV export of the filtered customer view.
type CustomerExport struct {
	Filename string
	Data     []byte
}

// CustomerUsecase derives the customer projection from the order and
// profile collections. Every call re-aggregates from fresh snapshots.
type CustomerUsecase interface {
	// ListCustomers aggregates, filters and sorts the customer projection.
	ListCustomers(ctx context.Context, query CustomerQuery) ([]*entity.Customer, error)

	// ExportCustomersCSV renders the filtered projection as a CSV file.
	ExportCustomersCSV(ctx context.Context, query CustomerQuery) (*CustomerExport, error)
}
