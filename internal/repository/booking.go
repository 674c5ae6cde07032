package repository

import (
	"time"

	"club-shifts-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingRepository handles database operations for bookings
type BookingRepository struct {
	db *gorm.DB
}

// Ensure BookingRepository implements BookingRepositoryInterface
var _ BookingRepositoryInterface = (*BookingRepository)(nil)

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create creates a new booking
func (r *BookingRepository) Create(booking *models.Booking) error {
	return r.db.Omit(clause.Associations).Create(booking).Error
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByClubID retrieves bookings of a club, optionally restricted to one date, ordered
// chronologically
func (r *BookingRepository) GetByClubID(clubID uuid.UUID, date *time.Time, limit, offset int) ([]models.Booking, int64, error) {
	var bookings []models.Booking
	var total int64

	query := r.db.Model(&models.Booking{}).Where("club_id = ?", clubID)
	if date != nil {
		query = query.Where("date = ?", date.Format("2006-01-02"))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("date ASC").Order("start_time ASC").Limit(limit).Offset(offset).Find(&bookings).Error
	return bookings, total, err
}

// Delete deletes a booking
func (r *BookingRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Booking{}, "id = ?", id).Error
}
