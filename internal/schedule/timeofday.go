package schedule

import (
	"fmt"
	"time"

	apperrors "club-shifts-backend/internal/errors"
)

const (
	// DateFormat is the calendar date layout used on the wire (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the time-of-day layout used on the wire (HH:MM, 24h)
	TimeFormat = "15:04"

	// MinutesPerDay is the number of minutes in a club-local day
	MinutesPerDay = 24 * 60
)

// TimeOfDay is a minute-precision wall-clock time, stored as minutes since midnight
type TimeOfDay int

// ParseTimeOfDay parses a strict "HH:MM" value. field names the input in the returned
// ValidationError.
func ParseTimeOfDay(field, value string) (TimeOfDay, error) {
	if len(value) != 5 || value[2] != ':' {
		return 0, apperrors.NewValidationError(field, fmt.Sprintf("invalid time %q, expected HH:MM", value))
	}
	hour, okH := twoDigits(value[0], value[1])
	minute, okM := twoDigits(value[3], value[4])
	if !okH || !okM || hour > 23 || minute > 59 {
		return 0, apperrors.NewValidationError(field, fmt.Sprintf("invalid time %q, expected HH:MM", value))
	}
	return TimeOfDay(hour*60 + minute), nil
}

// MustParseTimeOfDay is ParseTimeOfDay for literals known to be valid
func MustParseTimeOfDay(value string) TimeOfDay {
	t, err := ParseTimeOfDay("time", value)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayOf truncates t to the minute and returns its time-of-day in t's location
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// Hour returns the hour component
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// String formats the value as HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// On combines t with the calendar day of date in loc
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// ParseDate parses a club-local calendar date (YYYY-MM-DD)
func ParseDate(field, value string) (time.Time, error) {
	d, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return d, nil
}

// instantLayouts are the club-local layouts accepted by ParseInstant, tried in order
var instantLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseInstant parses a point in time. Values without an offset are read as club-local
// wall-clock time in loc; RFC3339 values are converted into loc.
func ParseInstant(field, value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewValidationError(field, fmt.Sprintf("invalid instant %q, expected YYYY-MM-DDTHH:MM[:SS]", value))
}
