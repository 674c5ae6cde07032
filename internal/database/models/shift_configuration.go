package models

import "github.com/google/uuid"

// ShiftConfiguration holds a club's jornada settings, one row per club
type ShiftConfiguration struct {
	BaseModel
	ClubID          uuid.UUID  `json:"club_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	CurrentWindowID *uuid.UUID `json:"current_window_id" gorm:"type:uuid"`
	RotationEnabled bool       `json:"rotation_enabled" gorm:"not null"`

	Club          Club         `json:"-" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	CurrentWindow *ShiftWindow `json:"current_window,omitempty" gorm:"foreignKey:CurrentWindowID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for ShiftConfiguration
func (ShiftConfiguration) TableName() string {
	return "shift_configurations"
}

// IsCurrent reports whether windowID is the configured current jornada
func (c *ShiftConfiguration) IsCurrent(windowID uuid.UUID) bool {
	return c != nil && c.CurrentWindowID != nil && *c.CurrentWindowID == windowID
}
