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

// namedRange resolves a derived report range from a reference date.
func namedRange(name string, on fintrack.Date) (fintrack.Range, error) {
	switch name {
	case "mtd", "month-to-date":
		return fintrack.MonthToDate(on), nil
	case "prev-month", "previous-month":
		return fintrack.PreviousMonth(on), nil
	case "ytd", "year-to-date":
		return fintrack.YearToDate(on), nil
	case "prev-year", "previous-year":
		return fintrack.PreviousYear(on), nil
	default:
		return fintrack.Range{}, fmt.Errorf("unknown report %q", name)
	}
}

type reportCmd struct {
	report      string
	period      string
	start       string
	end         string
	vendor      string
	description string
	amount      string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "search transactions by date range, vendor, description or amount" }
func (*reportCmd) Usage() string {
	return `fint report [-r <report> | -p <period> | -s <start> -e <end>] [-vendor <v>] [-desc <d>] [-a <amount>]

  Selects transactions by any combination of criteria, in store order.
  -r picks a derived range: mtd, prev-month, ytd or prev-year.
  -p picks the period containing today: day, week, month, quarter or year.
  -s/-e give a custom range; transactions dated exactly on the start or end
  day are excluded, the historical boundary rule of this tracker.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.report, "r", "", "Derived range: mtd, prev-month, ytd, prev-year")
	f.StringVar(&c.period, "p", "", "Period containing today: day, week, month, quarter, year")
	f.StringVar(&c.start, "s", "", "Custom range start date (yyyy-MM-dd)")
	f.StringVar(&c.end, "e", "", "Custom range end date (yyyy-MM-dd)")
	f.StringVar(&c.vendor, "vendor", "", "Vendor name (case-insensitive exact match)")
	f.StringVar(&c.description, "desc", "", "Description (case-insensitive exact match)")
	f.StringVar(&c.amount, "a", "", "Exact signed amount")
}

// search builds the Search from the flags, resolving the range flags.
func (c *reportCmd) search() (fintrack.Search, error) {
	s := fintrack.Search{Vendor: c.vendor, Description: c.description}

	switch {
	case c.report != "":
		r, err := namedRange(c.report, fintrack.Today())
		if err != nil {
			return s, err
		}
		s.Dates = &r
	case c.period != "":
		p, err := fintrack.ParsePeriod(c.period)
		if err != nil {
			return s, err
		}
		r := p.Range(fintrack.Today())
		s.Dates = &r
	case c.start != "" || c.end != "":
		if c.start == "" || c.end == "" {
			return s, fmt.Errorf("flags -s and -e must be given together")
		}
		from, err := fintrack.ParseDate(c.start)
		if err != nil {
			return s, err
		}
		to, err := fintrack.ParseDate(c.end)
		if err != nil {
			return s, err
		}
		r := fintrack.NewRange(from, to)
		s.Dates = &r
	}

	if c.amount != "" {
		amount, err := fintrack.ParseAmount(c.amount)
		if err != nil {
			return s, err
		}
		s.Amount = amount
	}
	return s, nil
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := c.search()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if s.IsZero() {
		fmt.Fprintln(os.Stderr, "Error: at least one criterion is required")
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger := DecodeLedgerFile()
	if n := renderer.Transactions(os.Stdout, ledger.Search(s)); n == 0 {
		fmt.Println("Sorry! There is nothing for this parameters.")
	}
	return subcommands.ExitSuccess
}
