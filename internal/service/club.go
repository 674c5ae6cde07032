package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"club-shifts-backend/internal/database/models"
	apperrors "club-shifts-backend/internal/errors"
	"club-shifts-backend/internal/logger"
	"club-shifts-backend/internal/repository"
	"club-shifts-backend/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClubService handles business logic for clubs
type ClubService struct {
	repo       repository.ClubRepositoryInterface
	validator  *validator.Validate
	defaultLoc *time.Location
}

// NewClubService creates a new club service. defaultLoc is used for clubs without a timezone.
func NewClubService(repo repository.ClubRepositoryInterface, validator *validator.Validate, defaultLoc *time.Location) *ClubService {
	return &ClubService{
		repo:       repo,
		validator:  validator,
		defaultLoc: defaultLoc,
	}
}

// CreateClubRequest represents the request to create a club
type CreateClubRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=40"`
	Title       string          `json:"title" validate:"required,min=1,max=100"`
	Description string          `json:"description,omitempty" validate:"max=200"`
	Timezone    string          `json:"timezone,omitempty" validate:"max=64" example:"America/Argentina/Buenos_Aires"`
	Metadata    json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

// ClubResponse represents the response for club operations
type ClubResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Timezone    string          `json:"timezone"`
	Metadata    json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// ClubListResponse represents a paginated list of clubs
type ClubListResponse struct {
	Clubs    []ClubResponse `json:"clubs"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new club
func (s *ClubService) Create(req *CreateClubRequest) (*ClubResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return nil, apperrors.ErrInvalidClubTimezone
		}
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing club by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrClubExists
	}

	club := &models.Club{
		Name:        req.Name,
		Title:       req.Title,
		Description: req.Description,
		Timezone:    req.Timezone,
		Metadata:    req.Metadata,
	}
	if err := s.repo.Create(club); err != nil {
		return nil, fmt.Errorf("failed to create club: %w", err)
	}

	return toClubResponse(club), nil
}

// GetByID retrieves a club by ID
func (s *ClubService) GetByID(id uuid.UUID) (*ClubResponse, error) {
	club, err := loadClub(s.repo, id)
	if err != nil {
		return nil, err
	}
	return toClubResponse(club), nil
}

// List retrieves clubs with pagination
func (s *ClubService) List(page, pageSize int) (*ClubListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	clubs, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get clubs: %w", err)
	}

	responses := make([]ClubResponse, len(clubs))
	for i := range clubs {
		responses[i] = *toClubResponse(&clubs[i])
	}

	return &ClubListResponse{
		Clubs:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Location returns the club-local location used for its schedule
func (s *ClubService) Location(id uuid.UUID) (*time.Location, error) {
	club, err := loadClub(s.repo, id)
	if err != nil {
		return nil, err
	}
	return clubLocation(club, s.defaultLoc), nil
}

// loadClub fetches a club, translating a missing row into ErrClubNotFound
func loadClub(repo repository.ClubRepositoryInterface, id uuid.UUID) (*models.Club, error) {
	club, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}
	return club, nil
}

// clubLocation returns the club's own timezone, or fallback when it has none or it cannot be loaded
func clubLocation(club *models.Club, fallback *time.Location) *time.Location {
	loc, err := schedule.LoadLocation(club.Timezone, fallback)
	if err != nil {
		logger.New().WithFields(map[string]interface{}{
			"club_id":  club.ID.String(),
			"timezone": club.Timezone,
		}).Warn("Unknown club timezone, using server default")
		if fallback == nil {
			return time.Local
		}
		return fallback
	}
	return loc
}

func toClubResponse(club *models.Club) *ClubResponse {
	return &ClubResponse{
		ID:          club.ID,
		Name:        club.Name,
		Title:       club.Title,
		Description: club.Description,
		Timezone:    club.Timezone,
		Metadata:    club.Metadata,
		CreatedAt:   club.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   club.UpdatedAt.Format(time.RFC3339),
	}
}
