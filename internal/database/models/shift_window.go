package models

import (
	"club-shifts-backend/internal/schedule"

	"github.com/google/uuid"
)

// ShiftWindow is a recurring jornada configured by a club
type ShiftWindow struct {
	BaseModel
	ClubID    uuid.UUID           `json:"club_id" gorm:"type:uuid;not null;index:idx_shift_windows_club_order,priority:1" validate:"required"`
	Name      string              `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	StartTime string              `json:"start_time" gorm:"type:varchar(5);not null" validate:"required,len=5"`
	EndTime   string              `json:"end_time" gorm:"type:varchar(5);not null" validate:"required,len=5"`
	Weekdays  schedule.WeekdaySet `json:"weekdays" gorm:"type:jsonb;not null"`
	Active    bool                `json:"active" gorm:"not null"`
	SortOrder int                 `json:"order" gorm:"column:sort_order;not null;default:0;index:idx_shift_windows_club_order,priority:2"`
	Color     string              `json:"color" gorm:"size:20"`

	Club Club `json:"-" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShiftWindow
func (ShiftWindow) TableName() string {
	return "shift_windows"
}

// ToWindow converts the row into its resolution form. Times must already be validated.
func (w *ShiftWindow) ToWindow() (schedule.Window, error) {
	start, err := schedule.ParseTimeOfDay("start_time", w.StartTime)
	if err != nil {
		return schedule.Window{}, err
	}
	end, err := schedule.ParseTimeOfDay("end_time", w.EndTime)
	if err != nil {
		return schedule.Window{}, err
	}
	days := w.Weekdays
	if days == nil {
		days = schedule.WeekdaySet{}
	}
	return schedule.Window{
		ID:       w.ID.String(),
		Name:     w.Name,
		Start:    start,
		End:      end,
		Weekdays: days,
		Active:   w.Active,
		Order:    w.SortOrder,
	}, nil
}
