package handlers

import (
	"net/http"

	apperrors "club-shifts-backend/internal/errors"
	"club-shifts-backend/internal/schedule"
	"club-shifts-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles HTTP requests for bookings. Every status it returns is derived
// against the injected clock.
type BookingHandler struct {
	service service.BookingServiceInterface
	clock   schedule.Clock
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(service service.BookingServiceInterface, clock schedule.Clock) *BookingHandler {
	return &BookingHandler{
		service: service,
		clock:   clock,
	}
}

// DeriveStatus handles POST /api/v1/bookings/status
// @Summary Derive booking status
// @Description Compute in_progress or completed for a booking's date and end time without storing anything
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body service.DeriveStatusRequest true "Booking times"
// @Success 200 {object} service.DeriveStatusResponse "Derived status"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Security BearerAuth
// @Router /bookings/status [post]
func (h *BookingHandler) DeriveStatus(c *gin.Context) {
	var req service.DeriveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.DeriveStatus(&req, h.clock.Now())
	if err != nil {
		respondError(c, err, "Failed to derive booking status")
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateBooking handles POST /api/v1/clubs/:id/bookings
// @Summary Create a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param booking body service.CreateBookingRequest true "Booking data"
// @Success 201 {object} service.BookingResponse "Successfully created booking"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	clubID, ok := parseUUIDParam(c, "id", "club")
	if !ok {
		return
	}

	var req service.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	booking, err := h.service.Create(c.Request.Context(), clubID, &req, h.clock.Now())
	if err != nil {
		respondError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListBookings handles GET /api/v1/clubs/:id/bookings
// @Summary List bookings
// @Tags bookings
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param date query string false "Only bookings on this date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.BookingListResponse "Successfully retrieved bookings"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	clubID, ok := parseUUIDParam(c, "id", "club")
	if !ok {
		return
	}
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	bookings, err := h.service.ListByClub(c.Request.Context(), clubID, c.Query("date"), page, pageSize, h.clock.Now())
	if err != nil {
		respondError(c, err, "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /api/v1/clubs/:id/bookings/:bookingId
// @Summary Get booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param bookingId path string true "Booking ID (UUID)"
// @Success 200 {object} service.BookingResponse "Successfully retrieved booking"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Booking not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/bookings/{bookingId} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, ok := h.loadOwnedBooking(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking handles DELETE /api/v1/clubs/:id/bookings/:bookingId
// @Summary Delete a booking
// @Tags bookings
// @Param id path string true "Club ID (UUID)"
// @Param bookingId path string true "Booking ID (UUID)"
// @Success 204 "Successfully deleted booking"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Booking not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/bookings/{bookingId} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	booking, ok := h.loadOwnedBooking(c)
	if !ok {
		return
	}

	if err := h.service.Delete(booking.ID); err != nil {
		respondError(c, err, "Failed to delete booking")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) loadOwnedBooking(c *gin.Context) (*service.BookingResponse, bool) {
	clubID, ok := parseUUIDParam(c, "id", "club")
	if !ok {
		return nil, false
	}
	bookingID, ok := parseUUIDParam(c, "bookingId", "booking")
	if !ok {
		return nil, false
	}

	booking, err := h.service.GetByID(c.Request.Context(), bookingID, h.clock.Now())
	if err != nil {
		respondError(c, err, "Failed to get booking")
		return nil, false
	}
	if booking.ClubID != clubID {
		respondError(c, apperrors.ErrBookingNotFound, "Failed to get booking")
		return nil, false
	}
	return booking, true
}
