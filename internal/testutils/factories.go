package testutils

import (
	"time"

	"club-shifts-backend/internal/database/models"
	"club-shifts-backend/internal/schedule"

	"github.com/google/uuid"
)

// ClubFactory provides methods to create test Club data
type ClubFactory struct{}

// NewClubFactory creates a new ClubFactory
func NewClubFactory() *ClubFactory {
	return &ClubFactory{}
}

// Create creates a test Club with default values and a unique name
func (f *ClubFactory) Create() *models.Club {
	id := uuid.New()
	return &models.Club{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "club-" + id.String()[:8],
		Title:       "Club Atletico de Prueba",
		Description: "A test club for testing purposes",
		Timezone:    "UTC",
	}
}

// WithName sets a custom name for the club
func (f *ClubFactory) WithName(name string) *models.Club {
	club := f.Create()
	club.Name = name
	return club
}

// ShiftWindowFactory provides methods to create test ShiftWindow data
type ShiftWindowFactory struct{}

// NewShiftWindowFactory creates a new ShiftWindowFactory
func NewShiftWindowFactory() *ShiftWindowFactory {
	return &ShiftWindowFactory{}
}

// Create creates an active, every-day morning window for clubID
func (f *ShiftWindowFactory) Create(clubID uuid.UUID) *models.ShiftWindow {
	return &models.ShiftWindow{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClubID:    clubID,
		Name:      "Mañana",
		StartTime: "07:00",
		EndTime:   "12:00",
		Weekdays:  schedule.NewWeekdaySet(schedule.AllWeekdays...),
		Active:    true,
		SortOrder: 1,
		Color:     "#4caf50",
	}
}

// WithTimes creates a window with a custom name, range and order
func (f *ShiftWindowFactory) WithTimes(clubID uuid.UUID, name, start, end string, order int) *models.ShiftWindow {
	w := f.Create(clubID)
	w.Name = name
	w.StartTime = start
	w.EndTime = end
	w.SortOrder = order
	return w
}

// BookingFactory provides methods to create test Booking data
type BookingFactory struct{}

// NewBookingFactory creates a new BookingFactory
func NewBookingFactory() *BookingFactory {
	return &BookingFactory{}
}

// Create creates a one hour booking on date for clubID
func (f *BookingFactory) Create(clubID uuid.UUID, date time.Time) *models.Booking {
	return &models.Booking{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClubID:       clubID,
		Date:         date,
		StartTime:    "17:00",
		EndTime:      "18:00",
		CourtName:    "Cancha 1",
		CustomerName: "Juan Perez",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Club        *ClubFactory
	ShiftWindow *ShiftWindowFactory
	Booking     *BookingFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Club:        NewClubFactory(),
		ShiftWindow: NewShiftWindowFactory(),
		Booking:     NewBookingFactory(),
	}
}
