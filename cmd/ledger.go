package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type ledgerCmd struct {
	view string
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "display transactions, newest first" }
func (*ledgerCmd) Usage() string {
	return `fint ledger [-view all|deposits|payments]

  Displays the ledger in reverse insertion order, optionally restricted to
  deposits (amount > 0) or payments (amount < 0).
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.view, "view", "all", "View: all, deposits or payments")
}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filters []func(fintrack.Transaction) bool
	switch c.view {
	case "all":
	case "deposits":
		filters = append(filters, fintrack.Deposits)
	case "payments":
		filters = append(filters, fintrack.Payments)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown view %q\n", c.view)
		return subcommands.ExitUsageError
	}

	ledger := DecodeLedgerFile()
	renderer.Transactions(os.Stdout, ledger.Reversed(filters...))
	return subcommands.ExitSuccess
}
