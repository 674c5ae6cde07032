package repository

import (
	"time"

	"club-shifts-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ClubRepositoryInterface defines the interface for club repository operations
type ClubRepositoryInterface interface {
	Create(club *models.Club) error
	GetByID(id uuid.UUID) (*models.Club, error)
	GetByName(name string) (*models.Club, error)
	GetAll(limit, offset int) ([]models.Club, int64, error)
}

// ShiftWindowRepositoryInterface defines the interface for shift window repository operations
type ShiftWindowRepositoryInterface interface {
	Create(window *models.ShiftWindow) error
	GetByID(id uuid.UUID) (*models.ShiftWindow, error)
	GetByClubID(clubID uuid.UUID) ([]models.ShiftWindow, error)
	GetActiveByClubID(clubID uuid.UUID) ([]models.ShiftWindow, error)
	Update(window *models.ShiftWindow) error
	Delete(id uuid.UUID) error
}

// ShiftConfigurationRepositoryInterface defines the interface for shift configuration repository operations
type ShiftConfigurationRepositoryInterface interface {
	GetByClubID(clubID uuid.UUID) (*models.ShiftConfiguration, error)
	GetOrCreate(clubID uuid.UUID) (*models.ShiftConfiguration, error)
	SetCurrentWindow(clubID uuid.UUID, windowID *uuid.UUID) error
	SetRotationEnabled(clubID uuid.UUID, enabled bool) error
}

// BookingRepositoryInterface defines the interface for booking repository operations
type BookingRepositoryInterface interface {
	Create(booking *models.Booking) error
	GetByID(id uuid.UUID) (*models.Booking, error)
	GetByClubID(clubID uuid.UUID, date *time.Time, limit, offset int) ([]models.Booking, int64, error)
	Delete(id uuid.UUID) error
}
