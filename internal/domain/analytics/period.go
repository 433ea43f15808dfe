package analytics

import (
	"strings"
	"time"

	domainerrors "livesales/internal/domain/errors"
	"livesales/internal/domain/entity"
)

// Period selects a time window relative to a reference "now".
type Period string

const (
	PeriodToday  Period = "today"
	PeriodWeek   Period = "week"  // Trailing 7 calendar days, not Monday-aligned.
	PeriodMonth  Period = "month" // Trailing calendar month.
	PeriodCustom Period = "custom"
	PeriodAll    Period = "all"
)

// ParsePeriod converts user input into a Period. Empty input means PeriodAll.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case "":
		return PeriodAll, nil
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodCustom, PeriodAll:
		return p, nil
	default:
		return "", domainerrors.ErrValidationFailed.WithDetailsf("unknown period %q", s)
	}
}

// DateRange is an inclusive [Start, End] window.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t lies within the range, both bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// FilterByPeriod keeps the orders inside the period. Calendar arithmetic runs in now's location.
// A custom period without a range, or with Start after End, yields an empty result.
func FilterByPeriod(orders []entity.Order, period Period, now time.Time, custom *DateRange) []entity.Order {
	var keep func(time.Time) bool

	switch period {
	case PeriodToday:
		keep = func(ts time.Time) bool { return sameDay(ts, now, now.Location()) }
	case PeriodWeek:
		cutoff := now.AddDate(0, 0, -7)
		keep = func(ts time.Time) bool { return !ts.Before(cutoff) }
	case PeriodMonth:
		cutoff := subtractMonth(now)
		keep = func(ts time.Time) bool { return !ts.Before(cutoff) }
	case PeriodCustom:
		if custom == nil || custom.Start.After(custom.End) {
			return []entity.Order{}
		}
		keep = custom.Contains
	case PeriodAll:
		keep = func(time.Time) bool { return true }
	default:
		return []entity.Order{}
	}

	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if keep(o.Timestamp) {
			out = append(out, o)
		}
	}

	return out
}

// StartOfDay truncates t to midnight of its calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()

	return ay == by && am == bm && ad == bd
}

// subtractMonth steps back one calendar month, clamping the day to the target month's length
// (March 31 becomes February 28/29 rather than rolling over into March).
func subtractMonth(t time.Time) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	loc := t.Location()

	target := time.Date(y, m-1, 1, 0, 0, 0, 0, loc)
	if last := daysIn(target.Year(), target.Month(), loc); d > last {
		d = last
	}

	return time.Date(target.Year(), target.Month(), d, hh, mm, ss, t.Nanosecond(), loc)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
