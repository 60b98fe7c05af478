package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/fintrack"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleLedger() *fintrack.Ledger {
	l := fintrack.NewLedger()
	l.Append(
		fintrack.Transaction{
			Date:        fintrack.MustParseDate("2024-01-05"),
			Time:        fintrack.MustParseTime("08:00:00"),
			Description: "Coffee",
			Vendor:      "Cafe",
			Amount:      decimal.RequireFromString("-4.50"),
		},
		fintrack.Transaction{
			Date:        fintrack.MustParseDate("2024-01-06"),
			Time:        fintrack.MustParseTime("09:00:00"),
			Description: "Paycheck",
			Vendor:      "Employer",
			Amount:      decimal.RequireFromString("1500.00"),
		},
	)
	return l
}

// runSession drives one scripted session over the given ledger and returns
// the console output and the transactions that were persisted.
func runSession(t *testing.T, ledger *fintrack.Ledger, input string, persistErr error) (string, []fintrack.Transaction) {
	t.Helper()
	var out bytes.Buffer
	var persisted []fintrack.Transaction
	s := &session{
		ledger: ledger,
		in:     bufio.NewScanner(strings.NewReader(input)),
		out:    &out,
		persist: func(tx fintrack.Transaction) error {
			if persistErr != nil {
				return persistErr
			}
			persisted = append(persisted, tx)
			return nil
		},
		today: func() fintrack.Date { return fintrack.MustParseDate("2024-03-14") },
	}
	s.home()
	return out.String(), persisted
}

func TestSession_exitAndInvalidOption(t *testing.T) {
	out, _ := runSession(t, exampleLedger(), "Z\nX\n", nil)
	assert.Contains(t, out, "Invalid option")
	assert.Contains(t, out, "Welcome to fint")
}

func TestSession_endOfInputEndsSession(t *testing.T) {
	// No explicit exit: the stream just ends.
	out, _ := runSession(t, exampleLedger(), "L\n", nil)
	assert.Contains(t, out, "Ledger")
}

func TestSession_ledgerViews(t *testing.T) {
	out, _ := runSession(t, exampleLedger(), "L\nA\nH\nX\n", nil)
	// Newest first: Paycheck before Coffee.
	require.Contains(t, out, "Paycheck")
	require.Contains(t, out, "Coffee")
	assert.Less(t, strings.Index(out, "Paycheck"), strings.Index(out, "Coffee"))
}

func TestSession_depositsView(t *testing.T) {
	out, _ := runSession(t, exampleLedger(), "L\nD\nH\nX\n", nil)
	assert.Contains(t, out, "Paycheck")
	assert.NotContains(t, out, "Coffee")
}

func TestSession_paymentsView(t *testing.T) {
	out, _ := runSession(t, exampleLedger(), "L\nP\nH\nX\n", nil)
	assert.Contains(t, out, "Coffee")
	assert.NotContains(t, out, "Paycheck")
}

func TestSession_addDeposit(t *testing.T) {
	ledger := fintrack.NewLedger()
	input := "D\n2024-01-06 09:00:00\nPaycheck\nEmployer\n1500.00\nX\n"
	out, persisted := runSession(t, ledger, input, nil)

	assert.Contains(t, out, "New deposit has been added to the transactions")
	require.Equal(t, 1, ledger.Len())
	require.Len(t, persisted, 1)
	assert.Equal(t, "Paycheck", persisted[0].Description)
	assert.True(t, persisted[0].IsDeposit())
	assert.Equal(t, "1500.00", persisted[0].Amount.String())
}

func TestSession_addPayment_negatesAmount(t *testing.T) {
	ledger := fintrack.NewLedger()
	input := "P\n2024-01-05 08:00:00\nCoffee\nCafe\n4.50\nX\n"
	out, persisted := runSession(t, ledger, input, nil)

	assert.Contains(t, out, "New payment has been added to the transactions")
	require.Len(t, persisted, 1)
	assert.True(t, persisted[0].IsPayment())
	assert.Equal(t, "-4.50", persisted[0].Amount.String())
}

func TestSession_addEntry_badDateAborts(t *testing.T) {
	ledger := fintrack.NewLedger()
	out, persisted := runSession(t, ledger, "D\nnot-a-date 08:00:00\nX\n", nil)

	assert.Contains(t, out, "not a valid date")
	assert.Equal(t, 0, ledger.Len())
	assert.Empty(t, persisted)
}

func TestSession_addEntry_repromptsUntilPositive(t *testing.T) {
	ledger := fintrack.NewLedger()
	input := "D\n2024-01-06 09:00:00\nPaycheck\nEmployer\n-5\n0\n1500.00\nX\n"
	out, persisted := runSession(t, ledger, input, nil)

	assert.Equal(t, strings.Count(out, "Please enter the positive amount:"), 3)
	require.Len(t, persisted, 1)
	assert.Contains(t, out, "New deposit has been added")
}

func TestSession_persistFailureKeepsMemory(t *testing.T) {
	ledger := fintrack.NewLedger()
	input := "D\n2024-01-06 09:00:00\nPaycheck\nEmployer\n1500.00\nX\n"
	_, persisted := runSession(t, ledger, input, errors.New("disk full"))

	// The in-memory record stays even though nothing reached the file.
	assert.Equal(t, 1, ledger.Len())
	assert.Empty(t, persisted)
}

func TestSession_vendorSearchIgnoresCase(t *testing.T) {
	out, _ := runSession(t, exampleLedger(), "L\nR\n5\ncafe\n0\nH\nX\n", nil)
	assert.Contains(t, out, "Coffee")
	assert.NotContains(t, out, "Paycheck")
}

func TestSession_vendorSearchNoMatch(t *testing.T) {
	out, _ := runSession(t, exampleLedger(), "L\nR\n5\nNobody\n0\nH\nX\n", nil)
	assert.Contains(t, out, "Sorry! There is nothing from this vendor.")
}

func TestSession_monthToDateReport(t *testing.T) {
	// today is fixed to 2024-03-14 by runSession.
	ledger := fintrack.NewLedger()
	ledger.Append(
		fintrack.Transaction{Date: fintrack.MustParseDate("2024-03-05"), Description: "inside", Vendor: "a", Amount: decimal.RequireFromString("1")},
		fintrack.Transaction{Date: fintrack.MustParseDate("2024-02-28"), Description: "outside", Vendor: "a", Amount: decimal.RequireFromString("1")},
	)
	out, _ := runSession(t, ledger, "L\nR\n1\n0\nH\nX\n", nil)
	assert.Contains(t, out, "inside")
	assert.NotContains(t, out, "outside")
}

func TestSession_emptyRangeReport(t *testing.T) {
	out, _ := runSession(t, exampleLedger(), "L\nR\n1\n0\nH\nX\n", nil)
	// The example rows are from January, today is fixed in March.
	assert.Contains(t, out, "Sorry! There is nothing within this date range.")
}

func TestSession_customSearch(t *testing.T) {
	input := "L\nR\n6\nno\nno\nyes\nEmployer\nyes\n1500.00\n0\nH\nX\n"
	out, _ := runSession(t, exampleLedger(), input, nil)
	assert.Contains(t, out, "Paycheck")
	assert.NotContains(t, out, "Coffee")
}

func TestSession_customSearchNoMatch(t *testing.T) {
	input := "L\nR\n6\nno\nno\nyes\nEmployer\nyes\n1501.00\n0\nH\nX\n"
	out, _ := runSession(t, exampleLedger(), input, nil)
	assert.Contains(t, out, "Sorry! There is nothing for this parameters.")
}

func TestSession_customSearchNothingSupplied(t *testing.T) {
	input := "L\nR\n6\nno\nno\nno\nno\n0\nH\nX\n"
	out, _ := runSession(t, exampleLedger(), input, nil)
	assert.Contains(t, out, "Sorry! There is nothing for this parameters.")
}
