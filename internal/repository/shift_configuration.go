package repository

import (
	"club-shifts-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShiftConfigurationRepository handles database operations for club shift configurations
type ShiftConfigurationRepository struct {
	db *gorm.DB
}

// Ensure ShiftConfigurationRepository implements ShiftConfigurationRepositoryInterface
var _ ShiftConfigurationRepositoryInterface = (*ShiftConfigurationRepository)(nil)

// NewShiftConfigurationRepository creates a new shift configuration repository
func NewShiftConfigurationRepository(db *gorm.DB) *ShiftConfigurationRepository {
	return &ShiftConfigurationRepository{db: db}
}

// GetByClubID retrieves the configuration of a club
func (r *ShiftConfigurationRepository) GetByClubID(clubID uuid.UUID) (*models.ShiftConfiguration, error) {
	var cfg models.ShiftConfiguration
	if err := r.db.Where("club_id = ?", clubID).First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetOrCreate retrieves the configuration of a club, creating the default row the first
// time a club configures shifts
func (r *ShiftConfigurationRepository) GetOrCreate(clubID uuid.UUID) (*models.ShiftConfiguration, error) {
	cfg := models.ShiftConfiguration{ClubID: clubID, RotationEnabled: true}
	err := r.db.Omit(clause.Associations).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "club_id"}}, DoNothing: true}).
		Create(&cfg).Error
	if err != nil {
		return nil, err
	}
	return r.GetByClubID(clubID)
}

// SetCurrentWindow records windowID (nil clears it) as the club's current jornada
func (r *ShiftConfigurationRepository) SetCurrentWindow(clubID uuid.UUID, windowID *uuid.UUID) error {
	return r.db.Model(&models.ShiftConfiguration{}).
		Where("club_id = ?", clubID).
		Update("current_window_id", windowID).Error
}

// SetRotationEnabled toggles jornada rotation for a club
func (r *ShiftConfigurationRepository) SetRotationEnabled(clubID uuid.UUID, enabled bool) error {
	return r.db.Model(&models.ShiftConfiguration{}).
		Where("club_id = ?", clubID).
		Update("rotation_enabled", enabled).Error
}
