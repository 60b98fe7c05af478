package fintrack

import (
	"testing"
	"time"
)

func TestDerivedRanges(t *testing.T) {
	tests := []struct {
		name   string
		on     Date
		derive func(Date) Range
		want   Range
	}{
		{
			name:   "month to date",
			on:     NewDate(2025, time.March, 14),
			derive: MonthToDate,
			want:   Range{NewDate(2025, time.March, 1), NewDate(2025, time.March, 14)},
		},
		{
			name:   "previous month from March of a non-leap year",
			on:     NewDate(2025, time.March, 14),
			derive: PreviousMonth,
			want:   Range{NewDate(2025, time.February, 1), NewDate(2025, time.February, 28)},
		},
		{
			name:   "previous month from March of a leap year",
			on:     NewDate(2024, time.March, 14),
			derive: PreviousMonth,
			want:   Range{NewDate(2024, time.February, 1), NewDate(2024, time.February, 29)},
		},
		{
			name:   "previous month across a year boundary",
			on:     NewDate(2025, time.January, 10),
			derive: PreviousMonth,
			want:   Range{NewDate(2024, time.December, 1), NewDate(2024, time.December, 31)},
		},
		{
			name:   "year to date",
			on:     NewDate(2025, time.March, 14),
			derive: YearToDate,
			want:   Range{NewDate(2025, time.January, 1), NewDate(2025, time.March, 14)},
		},
		{
			name:   "previous year",
			on:     NewDate(2025, time.March, 14),
			derive: PreviousYear,
			want:   Range{NewDate(2024, time.January, 1), NewDate(2024, time.December, 31)},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.derive(tc.on); got != tc.want {
				t.Errorf("got %s..%s, want %s..%s", got.From, got.To, tc.want.From, tc.want.To)
			}
		})
	}
}

func TestLedger_Summarize(t *testing.T) {
	l := NewLedger()
	l.Append(
		tx("2024-01-05", "08:00:00", "Coffee", "Cafe", "-4.50"),
		tx("2024-01-06", "09:00:00", "Paycheck", "Employer", "1500.00"),
		tx("2024-01-07", "08:30:00", "Coffee", "Cafe", "-5.00"),
	)
	s := l.Summarize()
	if s.Count != 3 {
		t.Errorf("Count = %d, want 3", s.Count)
	}
	if s.Deposits.String() != "1500.00" {
		t.Errorf("Deposits = %s, want 1500.00", s.Deposits)
	}
	if s.Payments.String() != "-9.50" {
		t.Errorf("Payments = %s, want -9.50", s.Payments)
	}
	if s.Net().String() != "1490.50" {
		t.Errorf("Net = %s, want 1490.50", s.Net())
	}
	if len(s.Vendors) != 2 {
		t.Fatalf("Vendors = %v, want 2 entries", s.Vendors)
	}
	// Sorted by vendor name: Cafe before Employer.
	if s.Vendors[0].Vendor != "Cafe" || s.Vendors[0].Count != 2 || s.Vendors[0].Total.String() != "-9.50" {
		t.Errorf("Cafe aggregate = %+v", s.Vendors[0])
	}
	if s.Vendors[1].Vendor != "Employer" || s.Vendors[1].Count != 1 {
		t.Errorf("Employer aggregate = %+v", s.Vendors[1])
	}
}

func TestLedger_Summarize_filtered(t *testing.T) {
	l := testLedger()
	s := l.Summarize(Deposits)
	if s.Count != 1 || !s.Payments.IsZero() {
		t.Errorf("Summarize(Deposits) = %+v, want only the deposit counted", s)
	}
}
