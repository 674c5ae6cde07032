package handlers

import (
	"net/http"

	"club-shifts-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftConfigurationHandler handles the club's current jornada and rotation settings
type ShiftConfigurationHandler struct {
	service service.ShiftConfigurationServiceInterface
}

// NewShiftConfigurationHandler creates a new shift configuration handler
func NewShiftConfigurationHandler(service service.ShiftConfigurationServiceInterface) *ShiftConfigurationHandler {
	return &ShiftConfigurationHandler{service: service}
}

// GetShiftConfiguration handles GET /api/v1/clubs/:id/shift-configuration
// @Summary Get shift configuration
// @Description Return the club's current jornada and rotation flag, creating the default configuration on first access
// @Tags shift-configuration
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Success 200 {object} service.ShiftConfigurationResponse "Shift configuration"
// @Failure 400 {object} map[string]interface{} "Invalid club ID"
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/shift-configuration [get]
func (h *ShiftConfigurationHandler) GetShiftConfiguration(c *gin.Context) {
	clubID, ok := parseUUIDParam(c, "id", "club")
	if !ok {
		return
	}

	cfg, err := h.service.Get(clubID)
	if err != nil {
		respondError(c, err, "Failed to get shift configuration")
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// SetCurrentShiftWindow handles PUT /api/v1/clubs/:id/shift-configuration/current
// @Summary Set current jornada
// @Tags shift-configuration
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param request body service.SetCurrentWindowRequest true "Window to make current"
// @Success 200 {object} service.ShiftConfigurationResponse "Updated shift configuration"
// @Failure 400 {object} map[string]interface{} "Invalid request or window of another club"
// @Failure 404 {object} map[string]interface{} "Club or shift window not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/shift-configuration/current [put]
func (h *ShiftConfigurationHandler) SetCurrentShiftWindow(c *gin.Context) {
	clubID, ok := parseUUIDParam(c, "id", "club")
	if !ok {
		return
	}

	var req service.SetCurrentWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	cfg, err := h.service.SetCurrentWindow(clubID, &req)
	if err != nil {
		respondError(c, err, "Failed to set current shift window")
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// UpdateRotation handles PUT /api/v1/clubs/:id/shift-configuration/rotation
// @Summary Enable or disable rotation
// @Tags shift-configuration
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param request body service.UpdateRotationRequest true "Rotation flag"
// @Success 200 {object} service.ShiftConfigurationResponse "Updated shift configuration"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/shift-configuration/rotation [put]
func (h *ShiftConfigurationHandler) UpdateRotation(c *gin.Context) {
	clubID, ok := parseUUIDParam(c, "id", "club")
	if !ok {
		return
	}

	var req service.UpdateRotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	cfg, err := h.service.SetRotationEnabled(clubID, &req)
	if err != nil {
		respondError(c, err, "Failed to update rotation")
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// RotateShiftWindow handles POST /api/v1/clubs/:id/shift-configuration/rotate
// @Summary Advance to the next jornada
// @Description Move the current jornada to the next active window by order, wrapping after the last one
// @Tags shift-configuration
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Success 200 {object} service.ShiftConfigurationResponse "Updated shift configuration"
// @Failure 400 {object} map[string]interface{} "Rotation disabled or no active windows"
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/shift-configuration/rotate [post]
func (h *ShiftConfigurationHandler) RotateShiftWindow(c *gin.Context) {
	clubID, ok := parseUUIDParam(c, "id", "club")
	if !ok {
		return
	}

	cfg, err := h.service.Rotate(clubID)
	if err != nil {
		respondError(c, err, "Failed to rotate shift window")
		return
	}

	c.JSON(http.StatusOK, cfg)
}
