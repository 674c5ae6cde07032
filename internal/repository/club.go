package repository

import (
	"club-shifts-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClubRepository handles database operations for clubs
type ClubRepository struct {
	db *gorm.DB
}

// Ensure ClubRepository implements ClubRepositoryInterface
var _ ClubRepositoryInterface = (*ClubRepository)(nil)

// NewClubRepository creates a new club repository
func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// Create creates a new club
func (r *ClubRepository) Create(club *models.Club) error {
	return r.db.Create(club).Error
}

// GetByID retrieves a club by its UUID
func (r *ClubRepository) GetByID(id uuid.UUID) (*models.Club, error) {
	var club models.Club
	if err := r.db.First(&club, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &club, nil
}

// GetByName retrieves a club by its unique name
func (r *ClubRepository) GetByName(name string) (*models.Club, error) {
	var club models.Club
	if err := r.db.Where("name = ?", name).First(&club).Error; err != nil {
		return nil, err
	}
	return &club, nil
}

// GetAll retrieves all clubs with pagination
func (r *ClubRepository) GetAll(limit, offset int) ([]models.Club, int64, error) {
	var clubs []models.Club
	var total int64

	// Count total
	if err := r.db.Model(&models.Club{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Fetch page
	if err := r.db.Limit(limit).Offset(offset).Order("title ASC").Find(&clubs).Error; err != nil {
		return nil, 0, err
	}

	return clubs, total, nil
}
