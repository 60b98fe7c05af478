// Package cmd implements the CLI application to manage the transaction ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&interactiveCmd{}, "session")

	c.Register(&depositCmd{}, "transactions")
	c.Register(&paymentCmd{}, "transactions")

	c.Register(&ledgerCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.csv", "Path to the pipe-delimited transactions file")

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// DecodeLedgerFile loads the transaction store from the backing file. A
// missing, unreadable or malformed file leaves the store empty: the failure
// is reported and the program continues with no transactions.
func DecodeLedgerFile() *fintrack.Ledger {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		logger.WithError(err).Warn("could not load transactions, starting with an empty ledger")
		return fintrack.NewLedger()
	}
	defer f.Close()

	ledger, err := fintrack.DecodeLedger(f)
	if err != nil {
		logger.WithError(err).Warn("could not load transactions, starting with an empty ledger")
		return fintrack.NewLedger()
	}
	return ledger
}

// persistTransaction durably appends one record to the backing file. The file
// is opened in append mode and closed per call; there is exactly one writer
// and it is never concurrent with itself.
func persistTransaction(tx fintrack.Transaction) error {
	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	if err := fintrack.EncodeTransaction(f, tx); err != nil {
		return fmt.Errorf("could not write to ledger file %q: %w", *ledgerFile, err)
	}
	return nil
}

// printMarkdown renders a markdown string to the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
