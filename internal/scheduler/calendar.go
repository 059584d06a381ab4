package scheduler

import (
	"fmt"
	"strings"
	"time"
)

// DayFormat is the canonical calendar-day string format.
const DayFormat = "2006-01-02"

// NormalizeDay truncates a timestamp to local midnight. Idempotent.
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayString renders a timestamp as its canonical calendar-day string.
func DayString(t time.Time) string {
	return t.Format(DayFormat)
}

var dayLayouts = []string{
	DayFormat,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseDay parses an ISO calendar date or any of the accepted unambiguous
// layouts into a local-midnight day. The calendar day is taken verbatim
// from the input; no timezone shifting is applied.
func ParseDay(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dayLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return NormalizeDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", raw)
}

// DateRange expands [start, end] into the inclusive list of calendar days.
// An inverted range yields an empty list, not an error.
func DateRange(start, end time.Time) []time.Time {
	start = NormalizeDay(start)
	end = NormalizeDay(end)
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// IsWeekendNight reports whether the date falls on a Friday or Saturday,
// the nights that carry weekend duty weighting.
func IsWeekendNight(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Friday || wd == time.Saturday
}

// dayNumber folds a date into a timezone-independent integer
// (year*10000 + month*100 + day) used for rotation seeding.
func dayNumber(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
