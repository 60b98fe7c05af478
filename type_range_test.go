package fintrack

import (
	"slices"
	"testing"
	"time"
)

func TestNewRange_swapsInvertedBounds(t *testing.T) {
	from := NewDate(2024, time.March, 10)
	to := NewDate(2024, time.March, 1)
	r := NewRange(from, to)
	if r.From != to || r.To != from {
		t.Errorf("NewRange did not swap inverted bounds: got %+v", r)
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(NewDate(2024, time.January, 5), NewDate(2024, time.January, 10))
	tests := []struct {
		d    Date
		want bool
	}{
		{NewDate(2024, time.January, 4), false},
		{NewDate(2024, time.January, 5), true}, // boundaries included
		{NewDate(2024, time.January, 7), true},
		{NewDate(2024, time.January, 10), true},
		{NewDate(2024, time.January, 11), false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.d); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.d, got, tc.want)
		}
	}
}

func TestRange_Days(t *testing.T) {
	r := NewRange(NewDate(2024, time.February, 27), NewDate(2024, time.March, 1))
	var got []Date
	for d := range r.Days() {
		got = append(got, d)
	}
	want := []Date{
		NewDate(2024, time.February, 27),
		NewDate(2024, time.February, 28),
		NewDate(2024, time.February, 29),
		NewDate(2024, time.March, 1),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Days() = %v, want %v", got, want)
	}
}

func TestRange_Period(t *testing.T) {
	tests := []struct {
		name   string
		r      Range
		want   Period
		wantOK bool
	}{
		{"single day", NewRange(NewDate(2024, 1, 3), NewDate(2024, 1, 3)), Daily, true},
		{"full month", NewRange(NewDate(2024, 2, 1), NewDate(2024, 2, 29)), Monthly, true},
		{"full year", NewRange(NewDate(2023, 1, 1), NewDate(2023, 12, 31)), Yearly, true},
		{"arbitrary", NewRange(NewDate(2024, 1, 3), NewDate(2024, 1, 20)), Daily, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := tc.r.Period()
			if ok != tc.wantOK || (ok && p != tc.want) {
				t.Errorf("Period() = (%s, %v), want (%s, %v)", p, ok, tc.want, tc.wantOK)
			}
		})
	}
}
