package fintrack

import (
	"fmt"
	"time"
)

// TimeFormat is the format used to represent times of day as strings.
const TimeFormat = "15:04:05"

// TimeOfDay represents a wall-clock time with second granularity, and no time zone.
type TimeOfDay struct {
	h, m, s int
}

// NewTimeOfDay returns a normalized TimeOfDay for the given hour, minute and second.
func NewTimeOfDay(hour, min, sec int) TimeOfDay {
	t := time.Date(0, time.January, 1, hour, min, sec, 0, time.UTC)
	return TimeOfDay{h: t.Hour(), m: t.Minute(), s: t.Second()}
}

// Hour returns the hour of the day.
func (t TimeOfDay) Hour() int { return t.h }

// Minute returns the minute within the hour.
func (t TimeOfDay) Minute() int { return t.m }

// Second returns the second within the minute.
func (t TimeOfDay) Second() int { return t.s }

// String format the time in its standard format.
func (t TimeOfDay) String() string { return fmt.Sprintf("%02d:%02d:%02d", t.h, t.m, t.s) }

// ParseTime parses a TimeOfDay from a string in "15:04:05" format.
func ParseTime(str string) (TimeOfDay, error) {
	on, err := time.Parse(TimeFormat, str)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q want format %q: %w", str, TimeFormat, err)
	}
	return NewTimeOfDay(on.Clock()), nil
}

// MustParseTime is like ParseTime but panics on error.
func MustParseTime(str string) TimeOfDay {
	t, err := ParseTime(str)
	if err != nil {
		panic(err.Error())
	}
	return t
}
