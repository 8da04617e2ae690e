// Package util provides small shared helpers.
package util

import "time"

// Named reporting periods shared by the customer list and the subscription
// statistics views.
const (
	PeriodToday     = "today"
	PeriodYesterday = "yesterday"
	PeriodLast7Days = "last7days"
	PeriodLast30    = "last30days"
	PeriodThisMonth = "thisMonth"
	PeriodAll       = "all"
)

// InPeriodAt reports whether t falls inside the named period, evaluated
// against the given reference time. An unknown or empty period behaves like
// "all" so that callers never filter records out by accident.
func InPeriodAt(t, now time.Time, period string) bool {
	switch period {
	case PeriodToday:
		return sameDay(t, now)
	case PeriodYesterday:
		return sameDay(t, now.AddDate(0, 0, -1))
	case PeriodLast7Days:
		return !t.Before(startOfDay(now).AddDate(0, 0, -6)) && !t.After(now)
	case PeriodLast30:
		return !t.Before(startOfDay(now).AddDate(0, 0, -29)) && !t.After(now)
	case PeriodThisMonth:
		return t.Year() == now.Year() && t.Month() == now.Month()
	case PeriodAll, "":
		return true
	}

	return true
}

// InPeriod is InPeriodAt evaluated against the current time.
func InPeriod(t time.Time, period string) bool {
	return InPeriodAt(t, time.Now(), period)
}

// PeriodLabel returns the human-readable label for a named period.
func PeriodLabel(period string) string {
	switch period {
	case PeriodToday:
		return "Today"
	case PeriodYesterday:
		return "Yesterday"
	case PeriodLast7Days:
		return "Last 7 Days"
	case PeriodLast30:
		return "Last 30 Days"
	case PeriodThisMonth:
		return "This Month"
	}

	return "All Time"
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
