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

type summaryCmd struct {
	report string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "aggregate totals, overall and per vendor" }
func (*summaryCmd) Usage() string {
	return `fint summary [-r <report>]

  Shows transaction counts, deposit and payment totals and the net amount,
  with a per-vendor breakdown. -r restricts the aggregate to a derived
  range: mtd, prev-month, ytd or prev-year.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.report, "r", "", "Derived range: mtd, prev-month, ytd, prev-year")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filters []func(fintrack.Transaction) bool
	if c.report != "" {
		r, err := namedRange(c.report, fintrack.Today())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, fintrack.Between(r))
	}

	ledger := DecodeLedgerFile()
	renderer.Summary(os.Stdout, ledger.Summarize(filters...))
	return subcommands.ExitSuccess
}
