package fintrack

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Search is a user-composed conjunction of optional filter criteria. The zero
// value matches nothing useful: callers are expected to set at least one
// criterion before asking for its filters.
type Search struct {
	// Dates restricts matches to the range, when set. Bounds follow Between:
	// both boundary days are excluded.
	Dates *Range
	// Vendor, when non-empty, must match the transaction vendor ignoring case.
	Vendor string
	// Description, when non-empty, must match the transaction description
	// ignoring case.
	Description string
	// Amount, when non-zero, must equal the transaction amount. A zero amount
	// means "no amount criterion": searching for exactly 0.00 is not
	// expressible, matching the historical file-based tracker this replaces.
	Amount decimal.Decimal
}

// IsZero reports whether no criterion is set.
func (s Search) IsZero() bool {
	return s.Dates == nil && s.Vendor == "" && s.Description == "" && s.Amount.IsZero()
}

// Filters returns one filter per supplied criterion. Criteria that were not
// supplied contribute no filter, so the conjunction constrains exactly what
// the user opted into.
func (s Search) Filters() []func(Transaction) bool {
	var filters []func(Transaction) bool
	if s.Dates != nil {
		filters = append(filters, Between(*s.Dates))
	}
	if s.Vendor != "" {
		filters = append(filters, ByVendor(s.Vendor))
	}
	if s.Description != "" {
		filters = append(filters, ByDescription(s.Description))
	}
	if !s.Amount.IsZero() {
		filters = append(filters, ByAmount(s.Amount))
	}
	return filters
}

// Search returns an iterator over the transactions matching all criteria of
// s, in store order.
func (l *Ledger) Search(s Search) iter.Seq2[int, Transaction] {
	return l.Transactions(s.Filters()...)
}
