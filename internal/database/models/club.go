package models

import "encoding/json"

// Club is a tenant. Every shift window, configuration and booking belongs to one club.
type Club struct {
	BaseModel
	Name        string          `json:"name" gorm:"size:40;not null;uniqueIndex" validate:"required,min=1,max=40"`
	Title       string          `json:"title" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Description string          `json:"description" gorm:"size:200" validate:"max=200"`
	Timezone    string          `json:"timezone" gorm:"size:64"` // IANA zone, empty means the server default
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	ShiftWindows []ShiftWindow `json:"shift_windows,omitempty" gorm:"foreignKey:ClubID"`
}

// TableName returns the table name for Club
func (Club) TableName() string {
	return "clubs"
}
