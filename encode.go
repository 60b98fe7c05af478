package fintrack

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// The backing store is a flat pipe-delimited file, one transaction per line:
//
//	yyyy-MM-dd|HH:mm:ss|description|vendor|amount
//
// Appends write a leading line separator before each record, so blank lines
// are expected and skipped on read. Free-form fields are stored verbatim: an
// embedded '|' in a description or vendor corrupts the row.

const fieldCount = 5

// ParseAmount parses a signed decimal amount from user or file input.
func ParseAmount(str string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", str, err)
	}
	return amount, nil
}

// DecodeTransaction decodes a single pipe-delimited record.
func DecodeTransaction(line string) (Transaction, error) {
	fields := strings.Split(line, "|")
	if len(fields) != fieldCount {
		return Transaction{}, fmt.Errorf("invalid record %q: want %d fields got %d", line, fieldCount, len(fields))
	}
	on, err := ParseDate(fields[0])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid record %q: %w", line, err)
	}
	at, err := ParseTime(fields[1])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid record %q: %w", line, err)
	}
	amount, err := ParseAmount(fields[4])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid record %q: %w", line, err)
	}
	return Transaction{
		Date:        on,
		Time:        at,
		Description: fields[2],
		Vendor:      fields[3],
		Amount:      amount,
	}, nil
}

// DecodeLedger reads pipe-delimited records from r and returns a ledger with
// the transactions in file order. Any malformed line fails the whole load:
// there is no per-line recovery.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue // Skip the separators left by appends.
		}
		tx, err := DecodeTransaction(line)
		if err != nil {
			return nil, err
		}
		ledger.Append(tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	return ledger, nil
}

// EncodeTransaction appends one record to w, preceded by a line separator.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	record := fmt.Sprintf("\n%s|%s|%s|%s|%s", tx.Date, tx.Time, tx.Description, tx.Vendor, tx.Amount)
	if _, err := io.WriteString(w, record); err != nil {
		return fmt.Errorf("could not append transaction: %w", err)
	}
	return nil
}
