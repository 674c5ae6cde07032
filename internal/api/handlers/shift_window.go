package handlers

import (
	"net/http"
	"strconv"

	apperrors "club-shifts-backend/internal/errors"
	"club-shifts-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftWindowHandler handles HTTP requests for a club's jornada registry
type ShiftWindowHandler struct {
	service service.ShiftWindowServiceInterface
}

// NewShiftWindowHandler creates a new shift window handler
func NewShiftWindowHandler(service service.ShiftWindowServiceInterface) *ShiftWindowHandler {
	return &ShiftWindowHandler{service: service}
}

// CreateShiftWindow handles POST /api/v1/clubs/:id/shift-windows
// @Summary Add a shift window
// @Description Register a jornada for the club. Omitting weekdays applies the window every day; start_time equal to end_time makes it cover the whole day.
// @Tags shift-windows
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param window body service.CreateShiftWindowRequest true "Shift window data"
// @Success 201 {object} service.ShiftWindowResponse "Successfully created shift window"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/shift-windows [post]
func (h *ShiftWindowHandler) CreateShiftWindow(c *gin.Context) {
	clubID, ok := parseUUIDParam(c, "id", "club")
	if !ok {
		return
	}

	var req service.CreateShiftWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	window, err := h.service.AddWindow(clubID, &req)
	if err != nil {
		respondError(c, err, "Failed to create shift window")
		return
	}

	c.JSON(http.StatusCreated, window)
}

// ListShiftWindows handles GET /api/v1/clubs/:id/shift-windows
// @Summary List shift windows
// @Description List the club's jornadas ordered by order then start time
// @Tags shift-windows
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param active query bool false "Only active windows"
// @Success 200 {array} service.ShiftWindowResponse "Successfully retrieved shift windows"
// @Failure 400 {object} map[string]interface{} "Invalid club ID"
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/shift-windows [get]
func (h *ShiftWindowHandler) ListShiftWindows(c *gin.Context) {
	clubID, ok := parseUUIDParam(c, "id", "club")
	if !ok {
		return
	}

	activeOnly := false
	if raw := c.Query("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid active filter: expected true or false"})
			return
		}
		activeOnly = v
	}

	var (
		windows []service.ShiftWindowResponse
		err     error
	)
	if activeOnly {
		windows, err = h.service.ListActiveWindows(clubID)
	} else {
		windows, err = h.service.ListWindows(clubID)
	}
	if err != nil {
		respondError(c, err, "Failed to list shift windows")
		return
	}

	c.JSON(http.StatusOK, windows)
}

// GetShiftWindow handles GET /api/v1/clubs/:id/shift-windows/:windowId
// @Summary Get shift window by ID
// @Tags shift-windows
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param windowId path string true "Shift window ID (UUID)"
// @Success 200 {object} service.ShiftWindowResponse "Successfully retrieved shift window"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Shift window not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/shift-windows/{windowId} [get]
func (h *ShiftWindowHandler) GetShiftWindow(c *gin.Context) {
	window, ok := h.loadOwnedWindow(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, window)
}

// UpdateShiftWindow handles PATCH /api/v1/clubs/:id/shift-windows/:windowId
// @Summary Update a shift window
// @Description Partially update a jornada. Only provided fields change.
// @Tags shift-windows
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param windowId path string true "Shift window ID (UUID)"
// @Param window body service.UpdateShiftWindowRequest true "Fields to update"
// @Success 200 {object} service.ShiftWindowResponse "Successfully updated shift window"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Shift window not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/shift-windows/{windowId} [patch]
func (h *ShiftWindowHandler) UpdateShiftWindow(c *gin.Context) {
	existing, ok := h.loadOwnedWindow(c)
	if !ok {
		return
	}

	var req service.UpdateShiftWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	window, err := h.service.UpdateWindow(existing.ID, &req)
	if err != nil {
		respondError(c, err, "Failed to update shift window")
		return
	}

	c.JSON(http.StatusOK, window)
}

// DeleteShiftWindow handles DELETE /api/v1/clubs/:id/shift-windows/:windowId
// @Summary Remove a shift window
// @Description Remove a jornada. The club's current jornada cannot be removed.
// @Tags shift-windows
// @Param id path string true "Club ID (UUID)"
// @Param windowId path string true "Shift window ID (UUID)"
// @Success 204 "Successfully removed shift window"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Shift window not found"
// @Failure 409 {object} map[string]interface{} "Window is the current jornada"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/shift-windows/{windowId} [delete]
func (h *ShiftWindowHandler) DeleteShiftWindow(c *gin.Context) {
	existing, ok := h.loadOwnedWindow(c)
	if !ok {
		return
	}

	if err := h.service.RemoveWindow(existing.ID); err != nil {
		respondError(c, err, "Failed to remove shift window")
		return
	}

	c.Status(http.StatusNoContent)
}

// loadOwnedWindow fetches the window named in the path and reports 404 when it belongs to
// another club.
func (h *ShiftWindowHandler) loadOwnedWindow(c *gin.Context) (*service.ShiftWindowResponse, bool) {
	clubID, ok := parseUUIDParam(c, "id", "club")
	if !ok {
		return nil, false
	}
	windowID, ok := parseUUIDParam(c, "windowId", "shift window")
	if !ok {
		return nil, false
	}

	window, err := h.service.GetWindow(windowID)
	if err != nil {
		respondError(c, err, "Failed to get shift window")
		return nil, false
	}
	if window.ClubID != clubID {
		respondError(c, apperrors.ErrShiftWindowNotFound, "Failed to get shift window")
		return nil, false
	}
	return window, true
}
