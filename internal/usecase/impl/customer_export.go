package impl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"dairyops/internal/domain/entity"
)

// exportHeader is the fixed column order of the customer CSV export.
var exportHeader = []string{
	"Name", "Phone", "Email", "Address", "Total Orders", "Total Spent",
	"Average Order Value", "Last Order Date", "Status", "Join Date",
}

// renderCustomersCSV serializes the projection as CSV. The export contract
// requires every cell quoted, which encoding/csv cannot be forced to do, so
// quoting is done by hand. Output is N+1 lines: header first, one row per
// customer, monetary cells with exactly two decimal places.
func renderCustomersCSV(customers []*entity.Customer) []byte {
	var b strings.Builder

	writeCSVRow(&b, exportHeader)
	for _, customer := range customers {
		writeCSVRow(&b, []string{
			customer.Name,
			customer.Phone,
			customer.Email,
			customer.Address,
			strconv.Itoa(customer.TotalOrders),
			fmt.Sprintf("%.2f", customer.TotalSpent),
			fmt.Sprintf("%.2f", customer.AverageOrderValue),
			customer.LastOrderDate.Format(time.DateOnly),
			string(customer.Status),
			customer.FirstOrderDate.Format(time.DateOnly),
		})
	}

	return []byte(b.String())
}

func writeCSVRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
