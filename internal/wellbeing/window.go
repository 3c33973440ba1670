// Package wellbeing turns mood and task snapshots into daily aggregates,
// trend scores, mood/task correlation tiers and a narrative insight.
//
// Every function in this package is pure: inputs are never modified and each
// call returns freshly allocated results. Nothing here blocks, logs or fails;
// empty input always produces a defined empty result.
package wellbeing

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidWindow indicates a window size outside the supported set
	ErrInvalidWindow = errors.New("window must be one of 7, 30 or 90 days")
	// ErrInvalidRange indicates a date range whose start is after its end
	ErrInvalidRange = errors.New("date range start is after its end")
	// ErrInvalidTimezone indicates a name that is not an IANA time zone
	ErrInvalidTimezone = errors.New("unknown time zone")
)

// Window is the number of trailing calendar days included in an analysis
type Window int

const (
	WindowWeek    Window = 7
	WindowMonth   Window = 30
	WindowQuarter Window = 90
)

// Windows returns the selectable window sizes
func Windows() []Window {
	return []Window{WindowWeek, WindowMonth, WindowQuarter}
}

// ParseWindow parses a selector value such as "30"
func ParseWindow(s string) (Window, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWindow, s)
	}
	w := Window(n)
	if !w.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWindow, n)
	}
	return w, nil
}

// Valid reports whether w is one of the selectable sizes
func (w Window) Valid() bool {
	return slices.Contains(Windows(), w)
}

// Days returns the window length as an int
func (w Window) Days() int {
	return int(w)
}

// LoadLocation resolves an IANA zone name. "Local" is rejected so results
// never depend on the host's zone.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	return loc, nil
}

// DateRange is an inclusive [From, To] filter. A zero bound is open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Validate checks that From is not after To when both are set
func (r DateRange) Validate() error {
	if !r.From.IsZero() && !r.To.IsZero() && r.From.After(r.To) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			r.From.Format(time.RFC3339), r.To.Format(time.RFC3339))
	}
	return nil
}

// Contains reports whether t falls inside the range
func (r DateRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}

// startOfDay returns midnight of t's calendar day in loc
func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// dayKey identifies a calendar day independent of the instant's offset
type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time, loc *time.Location) dayKey {
	y, m, d := t.In(loc).Date()
	return dayKey{year: y, month: m, day: d}
}

func resolveLocation(loc *time.Location, ref time.Time) *time.Location {
	if loc != nil {
		return loc
	}
	return ref.Location()
}
