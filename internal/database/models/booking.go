package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a court reservation ("turno"). Its display status is derived from Date and
// EndTime on every read; StatusOverride is an optional manually stored value.
type Booking struct {
	BaseModel
	ClubID         uuid.UUID     `json:"club_id" gorm:"type:uuid;not null;index:idx_bookings_club_date,priority:1" validate:"required"`
	Date           time.Time     `json:"date" gorm:"type:date;not null;index:idx_bookings_club_date,priority:2" validate:"required"`
	StartTime      string        `json:"start_time" gorm:"type:varchar(5);not null" validate:"required,len=5"`
	EndTime        string        `json:"end_time" gorm:"type:varchar(5);not null" validate:"required,len=5"`
	CourtName      string        `json:"court_name" gorm:"size:100"`
	CustomerName   string        `json:"customer_name" gorm:"size:100"`
	StatusOverride BookingStatus `json:"status_override" gorm:"type:varchar(20)"`
	Notes          string        `json:"notes" gorm:"type:text"`

	Club Club `json:"-" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}
