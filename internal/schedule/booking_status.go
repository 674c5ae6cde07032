package schedule

import "time"

// BookingStatus is the derived state of a booking
type BookingStatus string

const (
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
)

// IsValid checks if the BookingStatus is valid
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusInProgress, BookingStatusCompleted:
		return true
	}
	return false
}

// BookingEnd combines a booking's date and end time into a club-local instant
func BookingEnd(date, endTime string, loc *time.Location) (time.Time, error) {
	day, err := ParseDate("date", date)
	if err != nil {
		return time.Time{}, err
	}
	end, err := ParseTimeOfDay("end_time", endTime)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.Local
	}
	return end.On(day, loc), nil
}

// DeriveStatus computes a booking's status from its date and end time. There are only
// two states: a booking is in progress until its end passes, whatever its start time.
// startTime is checked for well-formedness only.
func DeriveStatus(now time.Time, date, startTime, endTime string, loc *time.Location) (BookingStatus, error) {
	if _, err := ParseTimeOfDay("start_time", startTime); err != nil {
		return "", err
	}
	end, err := BookingEnd(date, endTime, loc)
	if err != nil {
		return "", err
	}
	if now.Before(end) {
		return BookingStatusInProgress, nil
	}
	return BookingStatusCompleted, nil
}
