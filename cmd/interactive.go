package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type interactiveCmd struct{}

func (*interactiveCmd) Name() string     { return "interactive" }
func (*interactiveCmd) Synopsis() string { return "start the interactive menu session" }
func (*interactiveCmd) Usage() string {
	return `fint interactive

  Starts the menu-driven session. This is also what runs when fint is
  invoked without a command.
`
}

func (c *interactiveCmd) SetFlags(f *flag.FlagSet) {}

func (c *interactiveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := &session{
		ledger:  DecodeLedgerFile(),
		in:      bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
		persist: persistTransaction,
		today:   fintrack.Today,
	}
	s.home()
	return subcommands.ExitSuccess
}

// session is one interactive run: it owns the in-memory ledger and reads user
// intent line by line until exit or end of input.
type session struct {
	ledger  *fintrack.Ledger
	in      *bufio.Scanner
	out     io.Writer
	persist func(fintrack.Transaction) error
	today   func() fintrack.Date
}

// prompt prints a line and reads the next input line, trimmed. ok is false
// when the input stream ends, which terminates the session.
func (s *session) prompt(label string) (input string, ok bool) {
	fmt.Fprintln(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// home is the top-level menu loop.
func (s *session) home() {
	for {
		choice, ok := s.prompt(`Welcome to fint
Choose an option:
D) Add Deposit
P) Make Payment (Debit)
L) Ledger
X) Exit`)
		if !ok {
			return
		}
		switch strings.ToUpper(choice) {
		case "D":
			s.addEntry(true)
		case "P":
			s.addEntry(false)
		case "L":
			if !s.ledgerMenu() {
				return
			}
		case "X":
			return
		default:
			fmt.Fprintln(s.out, "Invalid option")
		}
	}
}

// ledgerMenu returns false when the input stream ended.
func (s *session) ledgerMenu() bool {
	for {
		choice, ok := s.prompt(`Ledger
Choose an option:
A) All
D) Deposits
P) Payments
R) Reports
H) Home`)
		if !ok {
			return false
		}
		switch strings.ToUpper(choice) {
		case "A":
			renderer.Transactions(s.out, s.ledger.Reversed())
		case "D":
			renderer.Transactions(s.out, s.ledger.Reversed(fintrack.Deposits))
		case "P":
			renderer.Transactions(s.out, s.ledger.Reversed(fintrack.Payments))
		case "R":
			if !s.reportsMenu() {
				return false
			}
		case "H":
			return true
		default:
			fmt.Fprintln(s.out, "Invalid option")
		}
	}
}

// reportsMenu returns false when the input stream ended.
func (s *session) reportsMenu() bool {
	for {
		choice, ok := s.prompt(`Reports
Choose an option:
1) Month To Date
2) Previous Month
3) Year To Date
4) Previous Year
5) Search by Vendor
6) Custom Search
0) Back`)
		if !ok {
			return false
		}
		switch choice {
		case "1":
			s.rangeReport(fintrack.MonthToDate(s.today()))
		case "2":
			s.rangeReport(fintrack.PreviousMonth(s.today()))
		case "3":
			s.rangeReport(fintrack.YearToDate(s.today()))
		case "4":
			s.rangeReport(fintrack.PreviousYear(s.today()))
		case "5":
			vendor, ok := s.prompt("Please enter name of the vendor:")
			if !ok {
				return false
			}
			if n := renderer.Transactions(s.out, s.ledger.Transactions(fintrack.ByVendor(vendor))); n == 0 {
				fmt.Fprintln(s.out, "Sorry! There is nothing from this vendor.")
			}
		case "6":
			if !s.customSearch() {
				return false
			}
		case "0":
			return true
		default:
			fmt.Fprintln(s.out, "Invalid option")
		}
	}
}

// rangeReport renders the transactions dated strictly inside the range.
func (s *session) rangeReport(r fintrack.Range) {
	if n := renderer.Transactions(s.out, s.ledger.Transactions(fintrack.Between(r))); n == 0 {
		fmt.Fprintln(s.out, "Sorry! There is nothing within this date range.")
	}
}

// addEntry prompts for one transaction and records it as a deposit or a
// payment. A malformed date, time or amount aborts the entry and returns to
// the menu.
func (s *session) addEntry(deposit bool) {
	kind := "deposit"
	if !deposit {
		kind = "payment"
	}

	input, ok := s.prompt("Please enter the date and time of the transaction (yyyy-MM-dd HH:mm:ss):")
	if !ok {
		return
	}
	dateAndTime := strings.Fields(input)
	if len(dateAndTime) != 2 {
		fmt.Fprintln(s.out, "Sorry! That is not a valid date and time. Please try again.")
		return
	}
	on, err := fintrack.ParseDate(dateAndTime[0])
	if err != nil {
		fmt.Fprintln(s.out, "Sorry! That is not a valid date. Please try again.")
		return
	}
	at, err := fintrack.ParseTime(dateAndTime[1])
	if err != nil {
		fmt.Fprintln(s.out, "Sorry! That is not a valid time. Please try again.")
		return
	}

	description, ok := s.prompt("Please enter the description:")
	if !ok {
		return
	}
	vendor, ok := s.prompt("Please enter the vendor:")
	if !ok {
		return
	}

	// Re-prompt until the amount is a positive number.
	var amount decimal.Decimal
	for {
		input, ok := s.prompt("Please enter the positive amount:")
		if !ok {
			return
		}
		amount, err = fintrack.ParseAmount(input)
		if err != nil {
			fmt.Fprintln(s.out, "Sorry! That is not a valid amount. Please try again.")
			return
		}
		if amount.IsPositive() {
			break
		}
	}

	var tx fintrack.Transaction
	if deposit {
		tx = fintrack.NewDeposit(on, at, description, vendor, amount)
	} else {
		tx = fintrack.NewPayment(on, at, description, vendor, amount)
	}

	s.ledger.Append(tx)
	if err := s.persist(tx); err != nil {
		// The in-memory entry is kept even when the file write fails. The
		// ledger and the file now disagree until the next restart.
		logger.WithError(err).Error("could not save the transaction to the ledger file")
	}
	fmt.Fprintf(s.out, "New %s has been added to the transactions\n", kind)
}

// customSearch collects only the opted-in criteria and runs the conjunction.
// It returns false when the input stream ended.
func (s *session) customSearch() bool {
	var search fintrack.Search

	answer, ok := s.prompt("Do you want to enter a date range? (yes/no)")
	if !ok {
		return false
	}
	if strings.EqualFold(answer, "yes") {
		startInput, ok := s.prompt("Please enter the start date (yyyy-MM-dd):")
		if !ok {
			return false
		}
		start, err := fintrack.ParseDate(startInput)
		if err != nil {
			fmt.Fprintln(s.out, "Sorry! That is not a valid date. Please try again.")
			return true
		}
		endInput, ok := s.prompt("Please enter the end date (yyyy-MM-dd):")
		if !ok {
			return false
		}
		end, err := fintrack.ParseDate(endInput)
		if err != nil {
			fmt.Fprintln(s.out, "Sorry! That is not a valid date. Please try again.")
			return true
		}
		r := fintrack.NewRange(start, end)
		search.Dates = &r
	}

	answer, ok = s.prompt("Do you want to enter the description? (yes/no)")
	if !ok {
		return false
	}
	if strings.EqualFold(answer, "yes") {
		if search.Description, ok = s.prompt("Please enter the description:"); !ok {
			return false
		}
	}

	answer, ok = s.prompt("Do you want to enter the vendor? (yes/no)")
	if !ok {
		return false
	}
	if strings.EqualFold(answer, "yes") {
		if search.Vendor, ok = s.prompt("Please enter the vendor:"); !ok {
			return false
		}
	}

	answer, ok = s.prompt("Do you want to enter the amount? (yes/no)")
	if !ok {
		return false
	}
	if strings.EqualFold(answer, "yes") {
		input, ok := s.prompt("Please enter the amount:")
		if !ok {
			return false
		}
		amount, err := fintrack.ParseAmount(input)
		if err != nil {
			fmt.Fprintln(s.out, "Sorry! That is not a valid amount. Please try again.")
			return true
		}
		search.Amount = amount
	}

	if search.IsZero() {
		fmt.Fprintln(s.out, "Sorry! There is nothing for this parameters.")
		return true
	}
	if n := renderer.Transactions(s.out, s.ledger.Search(search)); n == 0 {
		fmt.Fprintln(s.out, "Sorry! There is nothing for this parameters.")
	}
	return true
}
