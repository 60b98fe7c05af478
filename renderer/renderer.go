// Package renderer formats ledger data for the console.
package renderer

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/etnz/fintrack"
)

// rowFormat lays out the fixed-width, left-justified transaction columns:
// Date(12) | Time(10) | Description(28) | Vendor(20) | Amount(10).
const rowFormat = "%-12s| %-10s| %-28s| %-20s| %-10s|"

var rule = strings.Repeat("=", 89)

// Transactions writes the transactions yielded by seq to w as a fixed-width
// table and returns the number of rows written, so callers can report an
// empty result instead of showing a bare table.
func Transactions(w io.Writer, seq iter.Seq2[int, fintrack.Transaction]) int {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, rowFormat+"\n", "Date", "Time", "Description", "Vendor", "Amount")
	count := 0
	for _, tx := range seq {
		fmt.Fprintln(w, Transaction(tx))
		count++
	}
	fmt.Fprintln(w, rule)
	return count
}

// Transaction renders a single transaction as one table row.
func Transaction(tx fintrack.Transaction) string {
	return fmt.Sprintf(rowFormat, tx.Date, tx.Time, tx.Description, tx.Vendor, tx.Amount)
}
