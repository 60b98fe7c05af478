package fintrack

import (
	"iter"
	"strings"

	"github.com/shopspring/decimal"
)

// Ledger holds transactions in insertion order, oldest first. It is
// append-only: entries are never updated or removed.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append appends transactions to this ledger, preserving insertion order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Transactions returns an iterator that yields each transaction in its
// original order. All filters must accept a transaction for it to be yielded;
// with no filters every transaction is yielded.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !accepts(tx, filters) {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Reversed returns an iterator that yields transactions newest-first, the
// display order of the ledger views. Filters combine like in Transactions.
func (l *Ledger) Reversed(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i := len(l.transactions) - 1; i >= 0; i-- {
			tx := l.transactions[i]
			if !accepts(tx, filters) {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

func accepts(tx Transaction, filters []func(Transaction) bool) bool {
	for _, filter := range filters {
		if !filter(tx) {
			return false
		}
	}
	return true
}

// AcceptAll is a filter that accepts any transaction.
func AcceptAll(Transaction) bool { return true }

// Deposits is a filter that accepts transactions with a positive amount.
func Deposits(tx Transaction) bool { return tx.IsDeposit() }

// Payments is a filter that accepts transactions with a negative amount.
func Payments(tx Transaction) bool { return tx.IsPayment() }

// Between returns a filter that accepts transactions dated strictly inside
// the range: a transaction dated exactly on From or To is excluded. These
// surprising bounds are long-standing behavior that reports rely on, so they
// are kept as-is.
func Between(r Range) func(Transaction) bool {
	return func(tx Transaction) bool {
		return tx.Date.After(r.From) && tx.Date.Before(r.To)
	}
}

// ByVendor returns a filter that accepts transactions whose vendor matches,
// ignoring case.
func ByVendor(vendor string) func(Transaction) bool {
	return func(tx Transaction) bool { return strings.EqualFold(tx.Vendor, vendor) }
}

// ByDescription returns a filter that accepts transactions whose description
// matches, ignoring case.
func ByDescription(description string) func(Transaction) bool {
	return func(tx Transaction) bool { return strings.EqualFold(tx.Description, description) }
}

// ByAmount returns a filter that accepts transactions with exactly this
// amount, compared by value (4.5 matches 4.50).
func ByAmount(amount decimal.Decimal) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Amount.Equal(amount) }
}
