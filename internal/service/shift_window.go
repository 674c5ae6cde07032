package service

import (
	"errors"
	"fmt"
	"time"

	"club-shifts-backend/internal/database/models"
	apperrors "club-shifts-backend/internal/errors"
	"club-shifts-backend/internal/repository"
	"club-shifts-backend/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftWindowService manages the jornadas configured by each club
type ShiftWindowService struct {
	repo       repository.ShiftWindowRepositoryInterface
	configRepo repository.ShiftConfigurationRepositoryInterface
	clubRepo   repository.ClubRepositoryInterface
	validator  *validator.Validate
}

// NewShiftWindowService creates a new shift window service
func NewShiftWindowService(
	repo repository.ShiftWindowRepositoryInterface,
	configRepo repository.ShiftConfigurationRepositoryInterface,
	clubRepo repository.ClubRepositoryInterface,
	validator *validator.Validate,
) *ShiftWindowService {
	return &ShiftWindowService{
		repo:       repo,
		configRepo: configRepo,
		clubRepo:   clubRepo,
		validator:  validator,
	}
}

// CreateShiftWindowRequest represents the request to add a jornada.
// Weekdays omitted means every day; an explicit empty list means the window never applies.
type CreateShiftWindowRequest struct {
	Name      string   `json:"name" validate:"required,min=1,max=100" example:"Mañana"`
	StartTime string   `json:"start_time" validate:"required" example:"07:00"`
	EndTime   string   `json:"end_time" validate:"required" example:"12:00"`
	Weekdays  []string `json:"weekdays" example:"lunes,martes"`
	Active    *bool    `json:"active,omitempty"`
	Order     int      `json:"order" validate:"min=0"`
	Color     string   `json:"color,omitempty" validate:"max=20"`
}

// UpdateShiftWindowRequest represents a partial update of a jornada. Nil fields are left unchanged.
type UpdateShiftWindowRequest struct {
	Name      *string   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	StartTime *string   `json:"start_time,omitempty"`
	EndTime   *string   `json:"end_time,omitempty"`
	Weekdays  *[]string `json:"weekdays,omitempty"`
	Active    *bool     `json:"active,omitempty"`
	Order     *int      `json:"order,omitempty" validate:"omitempty,min=0"`
	Color     *string   `json:"color,omitempty" validate:"omitempty,max=20"`
}

// ShiftWindowResponse represents a jornada as returned by the API
type ShiftWindowResponse struct {
	ID              uuid.UUID `json:"id"`
	ClubID          uuid.UUID `json:"club_id"`
	Name            string    `json:"name"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	Weekdays        []string  `json:"weekdays"`
	Active          bool      `json:"active"`
	Order           int       `json:"order"`
	Color           string    `json:"color,omitempty"`
	CrossesMidnight bool      `json:"crosses_midnight"`
	FullDay         bool      `json:"full_day"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

// AddWindow registers a new jornada for a club
func (s *ShiftWindowService) AddWindow(clubID uuid.UUID, req *CreateShiftWindowRequest) (*ShiftWindowResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := schedule.ParseTimeOfDay("start_time", req.StartTime); err != nil {
		return nil, err
	}
	if _, err := schedule.ParseTimeOfDay("end_time", req.EndTime); err != nil {
		return nil, err
	}

	days := schedule.NewWeekdaySet(schedule.AllWeekdays...)
	if req.Weekdays != nil {
		parsed, err := schedule.ParseWeekdaySet(req.Weekdays)
		if err != nil {
			return nil, err
		}
		days = parsed
	}

	if _, err := loadClub(s.clubRepo, clubID); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	window := &models.ShiftWindow{
		ClubID:    clubID,
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Weekdays:  days,
		Active:    active,
		SortOrder: req.Order,
		Color:     req.Color,
	}
	if err := s.repo.Create(window); err != nil {
		return nil, fmt.Errorf("failed to create shift window: %w", err)
	}

	return toShiftWindowResponse(window), nil
}

// UpdateWindow applies a partial update to a jornada; concurrent updates are last-write-wins
func (s *ShiftWindowService) UpdateWindow(id uuid.UUID, req *UpdateShiftWindowRequest) (*ShiftWindowResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	window, err := s.getWindow(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		window.Name = *req.Name
	}
	if req.StartTime != nil {
		if _, err := schedule.ParseTimeOfDay("start_time", *req.StartTime); err != nil {
			return nil, err
		}
		window.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if _, err := schedule.ParseTimeOfDay("end_time", *req.EndTime); err != nil {
			return nil, err
		}
		window.EndTime = *req.EndTime
	}
	if req.Weekdays != nil {
		days, err := schedule.ParseWeekdaySet(*req.Weekdays)
		if err != nil {
			return nil, err
		}
		window.Weekdays = days
	}
	if req.Active != nil {
		window.Active = *req.Active
	}
	if req.Order != nil {
		window.SortOrder = *req.Order
	}
	if req.Color != nil {
		window.Color = *req.Color
	}

	if err := s.repo.Update(window); err != nil {
		return nil, fmt.Errorf("failed to update shift window: %w", err)
	}

	return toShiftWindowResponse(window), nil
}

// RemoveWindow deletes a jornada. The club's current jornada cannot be removed until
// another one is selected.
func (s *ShiftWindowService) RemoveWindow(id uuid.UUID) error {
	window, err := s.getWindow(id)
	if err != nil {
		return err
	}

	cfg, err := s.configRepo.GetByClubID(window.ClubID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to get shift configuration: %w", err)
	}
	if cfg.IsCurrent(window.ID) {
		return apperrors.ErrCurrentShiftWindow
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift window: %w", err)
	}
	return nil
}

// GetWindow retrieves a jornada by ID
func (s *ShiftWindowService) GetWindow(id uuid.UUID) (*ShiftWindowResponse, error) {
	window, err := s.getWindow(id)
	if err != nil {
		return nil, err
	}
	return toShiftWindowResponse(window), nil
}

// ListWindows returns every jornada of a club, active or not, ascending by order
func (s *ShiftWindowService) ListWindows(clubID uuid.UUID) ([]ShiftWindowResponse, error) {
	if _, err := loadClub(s.clubRepo, clubID); err != nil {
		return nil, err
	}

	windows, err := s.repo.GetByClubID(clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift windows: %w", err)
	}
	return toShiftWindowResponses(windows), nil
}

// ListActiveWindows returns the active jornadas of a club, ascending by order
func (s *ShiftWindowService) ListActiveWindows(clubID uuid.UUID) ([]ShiftWindowResponse, error) {
	if _, err := loadClub(s.clubRepo, clubID); err != nil {
		return nil, err
	}

	windows, err := s.repo.GetActiveByClubID(clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active shift windows: %w", err)
	}
	return toShiftWindowResponses(windows), nil
}

func (s *ShiftWindowService) getWindow(id uuid.UUID) (*models.ShiftWindow, error) {
	window, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftWindowNotFound
		}
		return nil, fmt.Errorf("failed to get shift window: %w", err)
	}
	return window, nil
}

func toShiftWindowResponse(window *models.ShiftWindow) *ShiftWindowResponse {
	resp := &ShiftWindowResponse{
		ID:        window.ID,
		ClubID:    window.ClubID,
		Name:      window.Name,
		StartTime: window.StartTime,
		EndTime:   window.EndTime,
		Weekdays:  window.Weekdays.Tokens(),
		Active:    window.Active,
		Order:     window.SortOrder,
		Color:     window.Color,
		CreatedAt: window.CreatedAt.Format(time.RFC3339),
		UpdatedAt: window.UpdatedAt.Format(time.RFC3339),
	}
	if w, err := window.ToWindow(); err == nil {
		resp.CrossesMidnight = w.CrossesMidnight()
		resp.FullDay = w.FullDay()
	}
	return resp
}

func toShiftWindowResponses(windows []models.ShiftWindow) []ShiftWindowResponse {
	responses := make([]ShiftWindowResponse, len(windows))
	for i := range windows {
		responses[i] = *toShiftWindowResponse(&windows[i])
	}
	return responses
}
