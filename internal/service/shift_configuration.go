package service

import (
	"errors"
	"fmt"
	"time"

	"club-shifts-backend/internal/database/models"
	apperrors "club-shifts-backend/internal/errors"
	"club-shifts-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftConfigurationService manages which jornada a club currently works in
type ShiftConfigurationService struct {
	repo       repository.ShiftConfigurationRepositoryInterface
	windowRepo repository.ShiftWindowRepositoryInterface
	clubRepo   repository.ClubRepositoryInterface
	validator  *validator.Validate
}

// NewShiftConfigurationService creates a new shift configuration service
func NewShiftConfigurationService(
	repo repository.ShiftConfigurationRepositoryInterface,
	windowRepo repository.ShiftWindowRepositoryInterface,
	clubRepo repository.ClubRepositoryInterface,
	validator *validator.Validate,
) *ShiftConfigurationService {
	return &ShiftConfigurationService{
		repo:       repo,
		windowRepo: windowRepo,
		clubRepo:   clubRepo,
		validator:  validator,
	}
}

// SetCurrentWindowRequest selects the club's current jornada
type SetCurrentWindowRequest struct {
	WindowID uuid.UUID `json:"window_id" validate:"required"`
}

// UpdateRotationRequest toggles jornada rotation
type UpdateRotationRequest struct {
	RotationEnabled *bool `json:"rotation_enabled" validate:"required"`
}

// ShiftConfigurationResponse represents a club's shift configuration
type ShiftConfigurationResponse struct {
	ClubID          uuid.UUID            `json:"club_id"`
	CurrentWindowID *uuid.UUID           `json:"current_window_id"`
	CurrentWindow   *ShiftWindowResponse `json:"current_window,omitempty"`
	RotationEnabled bool                 `json:"rotation_enabled"`
	UpdatedAt       string               `json:"updated_at"`
}

// Get returns the club's configuration, creating the default one on first use
func (s *ShiftConfigurationService) Get(clubID uuid.UUID) (*ShiftConfigurationResponse, error) {
	if _, err := loadClub(s.clubRepo, clubID); err != nil {
		return nil, err
	}

	cfg, err := s.repo.GetOrCreate(clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift configuration: %w", err)
	}
	return s.toResponse(cfg)
}

// SetCurrentWindow marks one of the club's jornadas as current
func (s *ShiftConfigurationService) SetCurrentWindow(clubID uuid.UUID, req *SetCurrentWindowRequest) (*ShiftConfigurationResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := loadClub(s.clubRepo, clubID); err != nil {
		return nil, err
	}

	window, err := s.windowRepo.GetByID(req.WindowID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftWindowNotFound
		}
		return nil, fmt.Errorf("failed to get shift window: %w", err)
	}
	if window.ClubID != clubID {
		return nil, apperrors.ErrWindowNotInClub
	}

	if _, err := s.repo.GetOrCreate(clubID); err != nil {
		return nil, fmt.Errorf("failed to get shift configuration: %w", err)
	}
	return s.setCurrent(clubID, &window.ID)
}

// SetRotationEnabled toggles whether Rotate may advance the current jornada
func (s *ShiftConfigurationService) SetRotationEnabled(clubID uuid.UUID, req *UpdateRotationRequest) (*ShiftConfigurationResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := loadClub(s.clubRepo, clubID); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetOrCreate(clubID); err != nil {
		return nil, fmt.Errorf("failed to get shift configuration: %w", err)
	}
	if err := s.repo.SetRotationEnabled(clubID, *req.RotationEnabled); err != nil {
		return nil, fmt.Errorf("failed to update shift configuration: %w", err)
	}
	return s.reload(clubID)
}

// Rotate advances the current jornada to the next active one by order, wrapping around.
// When no current jornada is set, or it is no longer active, the first active one is chosen.
func (s *ShiftConfigurationService) Rotate(clubID uuid.UUID) (*ShiftConfigurationResponse, error) {
	if _, err := loadClub(s.clubRepo, clubID); err != nil {
		return nil, err
	}

	cfg, err := s.repo.GetOrCreate(clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift configuration: %w", err)
	}
	if !cfg.RotationEnabled {
		return nil, apperrors.ErrRotationDisabled
	}

	windows, err := s.windowRepo.GetActiveByClubID(clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active shift windows: %w", err)
	}
	if len(windows) == 0 {
		return nil, apperrors.ErrNoActiveWindows
	}

	next := 0
	for i := range windows {
		if cfg.IsCurrent(windows[i].ID) {
			next = (i + 1) % len(windows)
			break
		}
	}

	return s.setCurrent(clubID, &windows[next].ID)
}

// setCurrent expects the configuration row to exist
func (s *ShiftConfigurationService) setCurrent(clubID uuid.UUID, windowID *uuid.UUID) (*ShiftConfigurationResponse, error) {
	if err := s.repo.SetCurrentWindow(clubID, windowID); err != nil {
		return nil, fmt.Errorf("failed to update shift configuration: %w", err)
	}
	return s.reload(clubID)
}

func (s *ShiftConfigurationService) reload(clubID uuid.UUID) (*ShiftConfigurationResponse, error) {
	cfg, err := s.repo.GetByClubID(clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftConfigurationNotFound
		}
		return nil, fmt.Errorf("failed to get shift configuration: %w", err)
	}
	return s.toResponse(cfg)
}

func (s *ShiftConfigurationService) toResponse(cfg *models.ShiftConfiguration) (*ShiftConfigurationResponse, error) {
	resp := &ShiftConfigurationResponse{
		ClubID:          cfg.ClubID,
		CurrentWindowID: cfg.CurrentWindowID,
		RotationEnabled: cfg.RotationEnabled,
		UpdatedAt:       cfg.UpdatedAt.Format(time.RFC3339),
	}
	if cfg.CurrentWindowID == nil {
		return resp, nil
	}

	window, err := s.windowRepo.GetByID(*cfg.CurrentWindowID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp, nil
		}
		return nil, fmt.Errorf("failed to get current shift window: %w", err)
	}
	resp.CurrentWindow = toShiftWindowResponse(window)
	return resp, nil
}
