package schedule

import (
	"sort"
	"time"
)

// Window is a recurring shift window ("jornada") reduced to the fields resolution needs
type Window struct {
	ID       string
	Name     string
	Start    TimeOfDay
	End      TimeOfDay
	Weekdays WeekdaySet
	Active   bool
	Order    int
}

// CrossesMidnight reports whether the window wraps into the next day (e.g. 22:00-06:00)
func (w Window) CrossesMidnight() bool {
	return w.Start > w.End
}

// FullDay reports whether the window covers all 24 hours (start == end)
func (w Window) FullDay() bool {
	return w.Start == w.End
}

// Contains reports whether t falls in [Start, End), wrapping past midnight when needed
func (w Window) Contains(t TimeOfDay) bool {
	switch {
	case w.FullDay():
		return true
	case w.CrossesMidnight():
		return t >= w.Start || t < w.End
	default:
		return t >= w.Start && t < w.End
	}
}

// AppliesOn reports whether the window is active and scheduled for weekday d
func (w Window) AppliesOn(d Weekday) bool {
	return w.Active && w.Weekdays.Contains(d)
}

// ResolveActive returns the window active at now, or false when none is. Windows that
// overlap are resolved by lowest Order, then earliest Start, then ID.
func ResolveActive(now time.Time, windows []Window) (*Window, bool) {
	day := WeekdayFromTime(now)
	at := TimeOfDayOf(now)

	var matches []Window
	for _, w := range windows {
		if w.AppliesOn(day) && w.Contains(at) {
			matches = append(matches, w)
		}
	}
	if len(matches) == 0 {
		return nil, false
	}

	SortByOrder(matches)
	active := matches[0]
	return &active, true
}

// MinutesUntilBoundary returns the minutes from now until w ends
func MinutesUntilBoundary(now time.Time, w Window) int {
	remaining := int(w.End) - int(TimeOfDayOf(now))
	if remaining <= 0 {
		remaining += MinutesPerDay
	}
	return remaining
}

// SortByOrder sorts windows in place by Order, then Start, then ID
func SortByOrder(windows []Window) {
	sort.SliceStable(windows, func(i, j int) bool {
		a, b := windows[i], windows[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.ID < b.ID
	})
}
