package fintrack

import (
	"github.com/shopspring/decimal"
)

// Transaction is a single ledger entry: a deposit when Amount is positive, a
// payment when it is negative. There is no separate type tag, the sign alone
// distinguishes the two.
//
// A Transaction is immutable once created: it is only ever appended to a
// Ledger, never updated or deleted.
type Transaction struct {
	Date        Date
	Time        TimeOfDay
	Description string
	Vendor      string
	Amount      decimal.Decimal
}

// NewDeposit records money coming in. The amount is kept as given.
func NewDeposit(on Date, at TimeOfDay, description, vendor string, amount decimal.Decimal) Transaction {
	return Transaction{Date: on, Time: at, Description: description, Vendor: vendor, Amount: amount}
}

// NewPayment records money going out. The amount is stored negated, so a
// positive input becomes a negative ledger entry.
func NewPayment(on Date, at TimeOfDay, description, vendor string, amount decimal.Decimal) Transaction {
	return Transaction{Date: on, Time: at, Description: description, Vendor: vendor, Amount: amount.Neg()}
}

// IsDeposit reports whether the transaction amount is strictly positive.
func (t Transaction) IsDeposit() bool { return t.Amount.IsPositive() }

// IsPayment reports whether the transaction amount is strictly negative.
func (t Transaction) IsPayment() bool { return t.Amount.IsNegative() }

// Equal reports whether two transactions have the same field values.
// Amounts are compared by value, so 4.5 and 4.50 are equal.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date &&
		t.Time == o.Time &&
		t.Description == o.Description &&
		t.Vendor == o.Vendor &&
		t.Amount.Equal(o.Amount)
}
