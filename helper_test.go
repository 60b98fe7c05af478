package fintrack

import "github.com/shopspring/decimal"

// tx is a helper for tests to build a transaction from literals.
func tx(date, clock, description, vendor, amount string) Transaction {
	return Transaction{
		Date:        MustParseDate(date),
		Time:        MustParseTime(clock),
		Description: description,
		Vendor:      vendor,
		Amount:      decimal.RequireFromString(amount),
	}
}

// testLedger is the worked example used across tests: one payment and one
// deposit, in insertion order.
func testLedger() *Ledger {
	l := NewLedger()
	l.Append(
		tx("2024-01-05", "08:00:00", "Coffee", "Cafe", "-4.50"),
		tx("2024-01-06", "09:00:00", "Paycheck", "Employer", "1500.00"),
	)
	return l
}
