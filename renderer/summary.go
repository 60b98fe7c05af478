package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/fintrack"
	"github.com/olekukonko/tablewriter"
)

// Summary writes the aggregate view of a set of transactions: overall totals
// followed by a per-vendor breakdown.
func Summary(w io.Writer, s fintrack.Summary) {
	fmt.Fprintf(w, "Transactions: %d\n", s.Count)
	fmt.Fprintf(w, "Deposits:     %s\n", s.Deposits)
	fmt.Fprintf(w, "Payments:     %s\n", s.Payments)
	fmt.Fprintf(w, "Net:          %s\n\n", s.Net())

	if len(s.Vendors) == 0 {
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Vendor", "Count", "Total"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, vt := range s.Vendors {
		table.Append([]string{vt.Vendor, fmt.Sprintf("%d", vt.Count), vt.Total.String()})
	}
	table.Render()
}
