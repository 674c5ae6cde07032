package models

import "club-shifts-backend/internal/schedule"

// BookingStatus is the persisted form of a booking status override
type BookingStatus = schedule.BookingStatus

// ClubRole defines what a token holder may do within a club
type ClubRole string

const (
	ClubRoleAdmin ClubRole = "admin"
	ClubRoleStaff ClubRole = "staff"
)

// IsValid checks if the ClubRole is valid
func (r ClubRole) IsValid() bool {
	switch r {
	case ClubRoleAdmin, ClubRoleStaff:
		return true
	}
	return false
}
