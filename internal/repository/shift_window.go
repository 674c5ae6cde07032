package repository

import (
	"club-shifts-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShiftWindowRepository handles database operations for shift windows
type ShiftWindowRepository struct {
	db *gorm.DB
}

// Ensure ShiftWindowRepository implements ShiftWindowRepositoryInterface
var _ ShiftWindowRepositoryInterface = (*ShiftWindowRepository)(nil)

// NewShiftWindowRepository creates a new shift window repository
func NewShiftWindowRepository(db *gorm.DB) *ShiftWindowRepository {
	return &ShiftWindowRepository{db: db}
}

// Create creates a new shift window
func (r *ShiftWindowRepository) Create(window *models.ShiftWindow) error {
	return r.db.Omit(clause.Associations).Create(window).Error
}

// GetByID retrieves a shift window by ID
func (r *ShiftWindowRepository) GetByID(id uuid.UUID) (*models.ShiftWindow, error) {
	var window models.ShiftWindow
	if err := r.db.First(&window, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &window, nil
}

// GetByClubID retrieves every shift window of a club in display order
func (r *ShiftWindowRepository) GetByClubID(clubID uuid.UUID) ([]models.ShiftWindow, error) {
	var windows []models.ShiftWindow
	err := r.db.Where("club_id = ?", clubID).Order("sort_order ASC").Order("start_time ASC").Order("id ASC").Find(&windows).Error
	return windows, err
}

// GetActiveByClubID retrieves the active shift windows of a club in display order
func (r *ShiftWindowRepository) GetActiveByClubID(clubID uuid.UUID) ([]models.ShiftWindow, error) {
	var windows []models.ShiftWindow
	err := r.db.Where("club_id = ? AND active = ?", clubID, true).Order("sort_order ASC").Order("start_time ASC").Order("id ASC").Find(&windows).Error
	return windows, err
}

// Update saves all fields of a shift window (last write wins)
func (r *ShiftWindowRepository) Update(window *models.ShiftWindow) error {
	return r.db.Omit(clause.Associations).Save(window).Error
}

// Delete deletes a shift window
func (r *ShiftWindowRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ShiftWindow{}, "id = ?", id).Error
}
