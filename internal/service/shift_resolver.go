package service

import (
	"context"
	"fmt"
	"time"

	"club-shifts-backend/internal/database/models"
	apperrors "club-shifts-backend/internal/errors"
	"club-shifts-backend/internal/logger"
	"club-shifts-backend/internal/repository"
	"club-shifts-backend/internal/schedule"

	"github.com/google/uuid"
)

// ShiftResolverService answers which jornada of a club is active at a given instant
type ShiftResolverService struct {
	windowRepo repository.ShiftWindowRepositoryInterface
	clubRepo   repository.ClubRepositoryInterface
	clock      schedule.Clock
	defaultLoc *time.Location
}

// NewShiftResolverService creates a new shift resolver service
func NewShiftResolverService(
	windowRepo repository.ShiftWindowRepositoryInterface,
	clubRepo repository.ClubRepositoryInterface,
	clock schedule.Clock,
	defaultLoc *time.Location,
) *ShiftResolverService {
	return &ShiftResolverService{
		windowRepo: windowRepo,
		clubRepo:   clubRepo,
		clock:      clock,
		defaultLoc: defaultLoc,
	}
}

// ActiveWindowResponse is the outcome of a resolution. Window is null when no jornada is
// active; FallbackWindow then carries the first active jornada by order, if any.
type ActiveWindowResponse struct {
	ClubID               uuid.UUID            `json:"club_id"`
	At                   string               `json:"at"`
	Weekday              string               `json:"weekday" example:"martes"`
	Time                 string               `json:"time" example:"10:00"`
	Window               *ShiftWindowResponse `json:"window"`
	FallbackWindow       *ShiftWindowResponse `json:"fallback_window,omitempty"`
	MinutesUntilBoundary *int                 `json:"minutes_until_boundary,omitempty"`
}

// ResolveActiveWindow resolves the jornada of clubID active at now. now is read in the
// club's location.
func (s *ShiftResolverService) ResolveActiveWindow(ctx context.Context, clubID uuid.UUID, now time.Time) (*ActiveWindowResponse, error) {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, club, now.In(clubLocation(club, s.defaultLoc)))
}

// ResolveAt resolves at the instant given as text, or at the clock's current time when at is empty
func (s *ShiftResolverService) ResolveAt(ctx context.Context, clubID uuid.UUID, at string) (*ActiveWindowResponse, error) {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	loc := clubLocation(club, s.defaultLoc)

	now := s.clock.Now()
	if at != "" {
		now, err = schedule.ParseInstant("at", at, loc)
		if err != nil {
			return nil, err
		}
	}
	return s.resolve(ctx, club, now.In(loc))
}

func (s *ShiftResolverService) resolve(ctx context.Context, club *models.Club, now time.Time) (*ActiveWindowResponse, error) {
	log := logger.WithContext(ctx).WithField("club_id", club.ID.String())

	rows, err := s.windowRepo.GetActiveByClubID(club.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active shift windows: %w", err)
	}

	byID := make(map[string]*models.ShiftWindow, len(rows))
	windows := make([]schedule.Window, 0, len(rows))
	for i := range rows {
		w, err := rows[i].ToWindow()
		if err != nil {
			log.WithField("shift_window_id", rows[i].ID.String()).WithField("error", err.Error()).
				Error("Shift window has malformed stored times")
			return nil, apperrors.NewValidationError("shift_window",
				fmt.Sprintf("shift window %s has malformed stored times: %v", rows[i].ID, err))
		}
		byID[w.ID] = &rows[i]
		windows = append(windows, w)
	}

	resp := &ActiveWindowResponse{
		ClubID:  club.ID,
		At:      now.Format(time.RFC3339),
		Weekday: schedule.WeekdayFromTime(now).Token(),
		Time:    schedule.TimeOfDayOf(now).String(),
	}

	if active, ok := schedule.ResolveActive(now, windows); ok {
		minutes := schedule.MinutesUntilBoundary(now, *active)
		resp.Window = toShiftWindowResponse(byID[active.ID])
		resp.MinutesUntilBoundary = &minutes
		return resp, nil
	}

	if len(windows) > 0 {
		schedule.SortByOrder(windows)
		resp.FallbackWindow = toShiftWindowResponse(byID[windows[0].ID])
	}
	log.WithFields(map[string]interface{}{
		"weekday":  resp.Weekday,
		"time":     resp.Time,
		"fallback": len(windows) > 0,
	}).Warn("No active shift window, falling back to first window by order")

	return resp, nil
}
