package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ClubServiceInterface defines the interface for club service
type ClubServiceInterface interface {
	Create(req *CreateClubRequest) (*ClubResponse, error)
	GetByID(id uuid.UUID) (*ClubResponse, error)
	List(page, pageSize int) (*ClubListResponse, error)
	Location(id uuid.UUID) (*time.Location, error)
}

// ShiftWindowServiceInterface defines the interface for the jornada registry
type ShiftWindowServiceInterface interface {
	AddWindow(clubID uuid.UUID, req *CreateShiftWindowRequest) (*ShiftWindowResponse, error)
	UpdateWindow(id uuid.UUID, req *UpdateShiftWindowRequest) (*ShiftWindowResponse, error)
	RemoveWindow(id uuid.UUID) error
	GetWindow(id uuid.UUID) (*ShiftWindowResponse, error)
	ListWindows(clubID uuid.UUID) ([]ShiftWindowResponse, error)
	ListActiveWindows(clubID uuid.UUID) ([]ShiftWindowResponse, error)
}

// ShiftResolverServiceInterface defines the interface for active jornada resolution
type ShiftResolverServiceInterface interface {
	ResolveActiveWindow(ctx context.Context, clubID uuid.UUID, now time.Time) (*ActiveWindowResponse, error)
	ResolveAt(ctx context.Context, clubID uuid.UUID, at string) (*ActiveWindowResponse, error)
}

// ShiftConfigurationServiceInterface defines the interface for shift configuration service
type ShiftConfigurationServiceInterface interface {
	Get(clubID uuid.UUID) (*ShiftConfigurationResponse, error)
	SetCurrentWindow(clubID uuid.UUID, req *SetCurrentWindowRequest) (*ShiftConfigurationResponse, error)
	SetRotationEnabled(clubID uuid.UUID, req *UpdateRotationRequest) (*ShiftConfigurationResponse, error)
	Rotate(clubID uuid.UUID) (*ShiftConfigurationResponse, error)
}

// BookingServiceInterface defines the interface for booking service
type BookingServiceInterface interface {
	DeriveStatus(req *DeriveStatusRequest, now time.Time) (*DeriveStatusResponse, error)
	Create(ctx context.Context, clubID uuid.UUID, req *CreateBookingRequest, now time.Time) (*BookingResponse, error)
	GetByID(ctx context.Context, id uuid.UUID, now time.Time) (*BookingResponse, error)
	ListByClub(ctx context.Context, clubID uuid.UUID, date string, page, pageSize int, now time.Time) (*BookingListResponse, error)
	Delete(id uuid.UUID) error
}

// Ensure services implement their interfaces
var (
	_ ClubServiceInterface               = (*ClubService)(nil)
	_ ShiftWindowServiceInterface        = (*ShiftWindowService)(nil)
	_ ShiftResolverServiceInterface      = (*ShiftResolverService)(nil)
	_ ShiftConfigurationServiceInterface = (*ShiftConfigurationService)(nil)
	_ BookingServiceInterface            = (*BookingService)(nil)
)
