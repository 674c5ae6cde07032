package schedule

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	apperrors "club-shifts-backend/internal/errors"
)

// Weekday is an ISO ordered day of the week, Monday first
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// AllWeekdays lists every weekday in order
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// wire tokens as stored in club configuration rows
var weekdayTokens = map[Weekday]string{
	Monday:    "lunes",
	Tuesday:   "martes",
	Wednesday: "miercoles",
	Thursday:  "jueves",
	Friday:    "viernes",
	Saturday:  "sabado",
	Sunday:    "domingo",
}

var tokenWeekdays = map[string]Weekday{
	"lunes":     Monday,
	"martes":    Tuesday,
	"miercoles": Wednesday,
	"miércoles": Wednesday,
	"jueves":    Thursday,
	"viernes":   Friday,
	"sabado":    Saturday,
	"sábado":    Saturday,
	"domingo":   Sunday,
}

// ParseWeekday maps a Spanish weekday token to a Weekday
func ParseWeekday(token string) (Weekday, error) {
	w, ok := tokenWeekdays[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return 0, apperrors.NewValidationError("weekdays", fmt.Sprintf("unknown weekday %q", token))
	}
	return w, nil
}

// WeekdayFromTime returns the weekday of t in t's location
func WeekdayFromTime(t time.Time) Weekday {
	if t.Weekday() == time.Sunday {
		return Sunday
	}
	return Weekday(t.Weekday())
}

// Token returns the wire token
func (w Weekday) Token() string {
	return weekdayTokens[w]
}

func (w Weekday) String() string {
	if tok, ok := weekdayTokens[w]; ok {
		return tok
	}
	return fmt.Sprintf("Weekday(%d)", int(w))
}

// WeekdaySet is the set of weekdays on which a window applies. It is persisted as a JSON
// array of wire tokens.
type WeekdaySet map[Weekday]struct{}

// NewWeekdaySet builds a set from weekdays
func NewWeekdaySet(days ...Weekday) WeekdaySet {
	s := make(WeekdaySet, len(days))
	for _, d := range days {
		s[d] = struct{}{}
	}
	return s
}

// ParseWeekdaySet builds a set from wire tokens, rejecting unknown tokens
func ParseWeekdaySet(tokens []string) (WeekdaySet, error) {
	s := make(WeekdaySet, len(tokens))
	for _, tok := range tokens {
		w, err := ParseWeekday(tok)
		if err != nil {
			return nil, err
		}
		s[w] = struct{}{}
	}
	return s, nil
}

// Contains reports whether w is in the set. An empty set contains nothing.
func (s WeekdaySet) Contains(w Weekday) bool {
	_, ok := s[w]
	return ok
}

// Sorted returns the members Monday first
func (s WeekdaySet) Sorted() []Weekday {
	days := make([]Weekday, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// Tokens returns the members as wire tokens, Monday first
func (s WeekdaySet) Tokens() []string {
	days := s.Sorted()
	tokens := make([]string, len(days))
	for i, d := range days {
		tokens[i] = d.Token()
	}
	return tokens
}

// MarshalJSON encodes the set as an ordered token array
func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Tokens())
}

// UnmarshalJSON decodes a token array
func (s *WeekdaySet) UnmarshalJSON(data []byte) error {
	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return err
	}
	parsed, err := ParseWeekdaySet(tokens)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value implements driver.Valuer
func (s WeekdaySet) Value() (driver.Value, error) {
	b, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (s *WeekdaySet) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = WeekdaySet{}
		return nil
	case []byte:
		return s.UnmarshalJSON(v)
	case string:
		return s.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into WeekdaySet", value)
	}
}
