package fintrack

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Derived ranges, computed from a reference date (usually Today). Each one
// feeds the date-range filter of the report engine.

// MonthToDate returns the range from day 1 of the month of 'on' through 'on'.
func MonthToDate(on Date) Range {
	return Range{From: on.StartOf(Monthly), To: on}
}

// PreviousMonth returns the full calendar month before the month of 'on'.
// February lengths follow the calendar, leap years included.
func PreviousMonth(on Date) Range {
	last := on.StartOf(Monthly).Add(-1) // last day of the previous month
	return Range{From: last.StartOf(Monthly), To: last}
}

// YearToDate returns the range from January 1 of the year of 'on' through 'on'.
func YearToDate(on Date) Range {
	return Range{From: on.StartOf(Yearly), To: on}
}

// PreviousYear returns the full calendar year before the year of 'on'.
func PreviousYear(on Date) Range {
	last := on.StartOf(Yearly).Add(-1) // December 31 of the previous year
	return Range{From: last.StartOf(Yearly), To: last}
}

// VendorTotal aggregates all transactions of one vendor.
type VendorTotal struct {
	Vendor string
	Count  int
	Total  decimal.Decimal
}

// Summary aggregates a set of transactions: overall totals plus a per-vendor
// breakdown sorted by vendor name.
type Summary struct {
	Count    int
	Deposits decimal.Decimal
	Payments decimal.Decimal
	Vendors  []VendorTotal
}

// Net returns deposits plus payments (payments are negative).
func (s Summary) Net() decimal.Decimal { return s.Deposits.Add(s.Payments) }

// Summarize computes a Summary over the transactions accepted by the filters.
func (l *Ledger) Summarize(filters ...func(Transaction) bool) Summary {
	var s Summary
	byVendor := make(map[string]VendorTotal)
	for _, tx := range l.Transactions(filters...) {
		s.Count++
		if tx.IsDeposit() {
			s.Deposits = s.Deposits.Add(tx.Amount)
		} else {
			s.Payments = s.Payments.Add(tx.Amount)
		}
		vt := byVendor[tx.Vendor]
		vt.Vendor = tx.Vendor
		vt.Count++
		vt.Total = vt.Total.Add(tx.Amount)
		byVendor[tx.Vendor] = vt
	}
	for _, vt := range byVendor {
		s.Vendors = append(s.Vendors, vt)
	}
	sort.Slice(s.Vendors, func(i, j int) bool { return s.Vendors[i].Vendor < s.Vendors[j].Vendor })
	return s
}
