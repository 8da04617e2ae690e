package impl

import (
	"context"
	"strings"
	"testing"

	"dairyops/internal/domain/entity"
	"dairyops/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCustomersCSV(t *testing.T) {
	customers := []*entity.Customer{
		{
			Name:              "Asha",
			Phone:             "555",
			Email:             "asha@example.com",
			Address:           `12 Dairy Lane, "Old Town"`,
			TotalOrders:       2,
			TotalSpent:        100,
			AverageOrderValue: 50,
			FirstOrderDate:    day(2024, 1, 1),
			LastOrderDate:     day(2024, 1, 10),
			Status:            entity.CustomerStatusActive,
		},
		{
			Name:           "Ravi",
			Phone:          "777",
			TotalOrders:    1,
			TotalSpent:     79.5,
			FirstOrderDate: day(2024, 1, 5),
			LastOrderDate:  day(2024, 1, 5),
			Status:         entity.CustomerStatusInactive,
		},
	}

	out := string(renderCustomersCSV(customers))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(customers)+1)

	assert.Equal(t,
		`"Name","Phone","Email","Address","Total Orders","Total Spent","Average Order Value","Last Order Date","Status","Join Date"`,
		lines[0])

	// Embedded quotes are doubled, money carries two decimals, join date is
	// the first order date.
	assert.Equal(t,
		`"Asha","555","asha@example.com","12 Dairy Lane, ""Old Town""","2","100.00","50.00","2024-01-10","active","2024-01-01"`,
		lines[1])
	assert.Equal(t,
		`"Ravi","777","","","1","79.50","0.00","2024-01-05","inactive","2024-01-05"`,
		lines[2])

	// Every cell is quoted, including numeric ones.
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, `"`))
		assert.True(t, strings.HasSuffix(line, `"`))
		assert.Len(t, strings.Split(line, `","`), len(exportHeader))
	}
}

func TestRenderCustomersCSV_EmptyProjection(t *testing.T) {
	out := string(renderCustomersCSV(nil))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"Name"`)
}

func TestCustomerService_ExportCustomersCSV(t *testing.T) {
	orderRepo := new(mockOrderRepository)
	profileRepo := new(mockProfileRepository)
	service := newTestCustomerService(orderRepo, profileRepo)

	ctx := context.Background()
	orderRepo.On("ListOrders", ctx).Return([]*entity.Order{
		{Phone: "555", CustomerName: "Asha", OrderDate: day(2024, 1, 1), TotalAmount: 100, Status: entity.OrderStatusCompleted},
	}, nil)
	profileRepo.On("ListProfiles", ctx).Return([]*entity.UserProfile{}, nil)

	export, err := service.ExportCustomersCSV(ctx, usecase.CustomerQuery{})
	require.NoError(t, err)
	assert.Equal(t, "customers-2024-02-01.csv", export.Filename)
	assert.Equal(t, 2, strings.Count(string(export.Data), "\n"))
}
