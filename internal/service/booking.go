package service

import (
	"context"
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

// BookingService handles bookings and derives their status on every read
type BookingService struct {
	repo       repository.BookingRepositoryInterface
	clubRepo   repository.ClubRepositoryInterface
	validator  *validator.Validate
	defaultLoc *time.Location
}

// NewBookingService creates a new booking service. defaultLoc applies to stateless status
// derivation and to clubs without a timezone.
func NewBookingService(
	repo repository.BookingRepositoryInterface,
	clubRepo repository.ClubRepositoryInterface,
	validator *validator.Validate,
	defaultLoc *time.Location,
) *BookingService {
	return &BookingService{
		repo:       repo,
		clubRepo:   clubRepo,
		validator:  validator,
		defaultLoc: defaultLoc,
	}
}

// DeriveStatusRequest carries the time fields of a booking
type DeriveStatusRequest struct {
	Date      string `json:"date" validate:"required" example:"2025-01-10"`
	StartTime string `json:"start_time" validate:"required" example:"17:00"`
	EndTime   string `json:"end_time" validate:"required" example:"18:00"`
}

// DeriveStatusResponse is the derived status of a booking at EvaluatedAt
type DeriveStatusResponse struct {
	Status      schedule.BookingStatus `json:"status" example:"in_progress"`
	EndsAt      string                 `json:"ends_at"`
	EvaluatedAt string                 `json:"evaluated_at"`
}

// CreateBookingRequest represents the request to create a booking
type CreateBookingRequest struct {
	Date           string `json:"date" validate:"required" example:"2025-01-10"`
	StartTime      string `json:"start_time" validate:"required" example:"17:00"`
	EndTime        string `json:"end_time" validate:"required" example:"18:00"`
	CourtName      string `json:"court_name,omitempty" validate:"max=100"`
	CustomerName   string `json:"customer_name,omitempty" validate:"max=100"`
	StatusOverride string `json:"status_override,omitempty" validate:"omitempty,oneof=in_progress completed"`
	Notes          string `json:"notes,omitempty"`
}

// BookingResponse represents a booking. Status is always derived from the booking's date
// and end time; StoredStatus echoes the persisted override and never replaces it.
type BookingResponse struct {
	ID           uuid.UUID              `json:"id"`
	ClubID       uuid.UUID              `json:"club_id"`
	Date         string                 `json:"date"`
	StartTime    string                 `json:"start_time"`
	EndTime      string                 `json:"end_time"`
	CourtName    string                 `json:"court_name"`
	CustomerName string                 `json:"customer_name"`
	Notes        string                 `json:"notes"`
	Status       schedule.BookingStatus `json:"status"`
	StoredStatus schedule.BookingStatus `json:"stored_status,omitempty"`
	CreatedAt    string                 `json:"created_at"`
	UpdatedAt    string                 `json:"updated_at"`
}

// BookingListResponse represents a paginated list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// DeriveStatus computes a booking status from raw fields without touching storage
func (s *BookingService) DeriveStatus(req *DeriveStatusRequest, now time.Time) (*DeriveStatusResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	status, err := schedule.DeriveStatus(now, req.Date, req.StartTime, req.EndTime, s.defaultLoc)
	if err != nil {
		return nil, err
	}
	end, err := schedule.BookingEnd(req.Date, req.EndTime, s.defaultLoc)
	if err != nil {
		return nil, err
	}

	return &DeriveStatusResponse{
		Status:      status,
		EndsAt:      end.Format(time.RFC3339),
		EvaluatedAt: now.In(end.Location()).Format(time.RFC3339),
	}, nil
}

// Create creates a booking for a club
func (s *BookingService) Create(ctx context.Context, clubID uuid.UUID, req *CreateBookingRequest, now time.Time) (*BookingResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	date, err := schedule.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	if _, err := schedule.ParseTimeOfDay("start_time", req.StartTime); err != nil {
		return nil, err
	}
	if _, err := schedule.ParseTimeOfDay("end_time", req.EndTime); err != nil {
		return nil, err
	}

	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ClubID:         clubID,
		Date:           date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		CourtName:      req.CourtName,
		CustomerName:   req.CustomerName,
		StatusOverride: models.BookingStatus(req.StatusOverride),
		Notes:          req.Notes,
	}
	if err := s.repo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return s.toResponse(ctx, booking, clubLocation(club, s.defaultLoc), now)
}

// GetByID retrieves a booking with its status derived at now
func (s *BookingService) GetByID(ctx context.Context, id uuid.UUID, now time.Time) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	club, err := loadClub(s.clubRepo, booking.ClubID)
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, booking, clubLocation(club, s.defaultLoc), now)
}

// ListByClub lists a club's bookings, optionally for a single date (YYYY-MM-DD)
func (s *BookingService) ListByClub(ctx context.Context, clubID uuid.UUID, date string, page, pageSize int, now time.Time) (*BookingListResponse, error) {
	var day *time.Time
	if date != "" {
		d, err := schedule.ParseDate("date", date)
		if err != nil {
			return nil, err
		}
		day = &d
	}

	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	loc := clubLocation(club, s.defaultLoc)

	page, pageSize = normalizePagination(page, pageSize)
	bookings, total, err := s.repo.GetByClubID(clubID, day, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		resp, err := s.toResponse(ctx, &bookings[i], loc, now)
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}

	return &BookingListResponse{
		Bookings: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Delete deletes a booking
func (s *BookingService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBookingNotFound
		}
		return fmt.Errorf("failed to get booking: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

// toResponse derives the booking's status at now. A stored row whose times no longer
// parse is reported as a ValidationError naming the booking.
func (s *BookingService) toResponse(ctx context.Context, booking *models.Booking, loc *time.Location, now time.Time) (*BookingResponse, error) {
	date := booking.Date.Format(schedule.DateFormat)

	status, err := schedule.DeriveStatus(now, date, booking.StartTime, booking.EndTime, loc)
	if err != nil {
		logger.WithContext(ctx).WithField("booking_id", booking.ID.String()).WithField("error", err.Error()).
			Error("Failed to derive booking status")
		return nil, apperrors.NewValidationError("booking", fmt.Sprintf("booking %s has malformed stored times: %v", booking.ID, err))
	}

	return &BookingResponse{
		ID:           booking.ID,
		ClubID:       booking.ClubID,
		Date:         date,
		StartTime:    booking.StartTime,
		EndTime:      booking.EndTime,
		CourtName:    booking.CourtName,
		CustomerName: booking.CustomerName,
		Notes:        booking.Notes,
		Status:       status,
		StoredStatus: booking.StatusOverride,
		CreatedAt:    booking.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    booking.UpdatedAt.Format(time.RFC3339),
	}, nil
}
