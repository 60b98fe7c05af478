package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// recordTransaction appends tx to the backing file and reports the outcome.
func recordTransaction(tx fintrack.Transaction, kind string) subcommands.ExitStatus {
	if err := persistTransaction(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording %s: %v\n", kind, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("New %s has been added to the transactions\n", kind)
	return subcommands.ExitSuccess
}

// entryFlags are the flags shared by the deposit and payment commands.
type entryFlags struct {
	date        string
	clock       string
	description string
	vendor      string
	amount      string
}

func (c *entryFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", fintrack.Today().String(), "Transaction date (yyyy-MM-dd)")
	f.StringVar(&c.clock, "t", time.Now().Format(fintrack.TimeFormat), "Transaction time (HH:mm:ss)")
	f.StringVar(&c.description, "desc", "", "Free-form description")
	f.StringVar(&c.vendor, "v", "", "Vendor name")
	f.StringVar(&c.amount, "a", "", "Positive amount")
}

// parse validates the flags and returns the entry fields. The amount must be
// strictly positive; the caller decides the sign of the stored value.
func (c *entryFlags) parse() (on fintrack.Date, at fintrack.TimeOfDay, amount decimal.Decimal, err error) {
	if c.description == "" || c.vendor == "" || c.amount == "" {
		return on, at, amount, fmt.Errorf("flags -desc, -v and -a are required")
	}
	on, err = fintrack.ParseDate(c.date)
	if err != nil {
		return on, at, amount, err
	}
	at, err = fintrack.ParseTime(c.clock)
	if err != nil {
		return on, at, amount, err
	}
	amount, err = fintrack.ParseAmount(c.amount)
	if err != nil {
		return on, at, amount, err
	}
	if !amount.IsPositive() {
		return on, at, amount, fmt.Errorf("amount must be positive, got %s", amount)
	}
	return on, at, amount, nil
}

// --- Deposit Command ---

type depositCmd struct{ entryFlags }

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record money coming in" }
func (*depositCmd) Usage() string {
	return `fint deposit -desc <description> -v <vendor> -a <amount> [-d <date>] [-t <time>]

  Records a deposit (positive amount) and appends it to the ledger file.
`
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, at, amount, err := c.parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	tx := fintrack.NewDeposit(on, at, c.description, c.vendor, amount)
	return recordTransaction(tx, "deposit")
}

// --- Payment Command ---

type paymentCmd struct{ entryFlags }

func (*paymentCmd) Name() string     { return "payment" }
func (*paymentCmd) Synopsis() string { return "record money going out" }
func (*paymentCmd) Usage() string {
	return `fint payment -desc <description> -v <vendor> -a <amount> [-d <date>] [-t <time>]

  Records a payment. The amount is entered positive and stored negated.
`
}

func (c *paymentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, at, amount, err := c.parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	tx := fintrack.NewPayment(on, at, c.description, c.vendor, amount)
	return recordTransaction(tx, "payment")
}
