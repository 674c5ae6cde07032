package handlers

import (
	"net/http"

	"club-shifts-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftResolutionHandler answers which jornada applies at a given instant
type ShiftResolutionHandler struct {
	resolver service.ShiftResolverServiceInterface
}

// NewShiftResolutionHandler creates a new shift resolution handler
func NewShiftResolutionHandler(resolver service.ShiftResolverServiceInterface) *ShiftResolutionHandler {
	return &ShiftResolutionHandler{resolver: resolver}
}

// GetActiveShiftWindow handles GET /api/v1/clubs/:id/active-shift
// @Summary Resolve the active shift window
// @Description Return the jornada that applies now, or at the instant given by `at`, in the club's timezone. When none applies, window is null and fallback_window carries the first active window by order.
// @Tags shift-windows
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param at query string false "Instant to resolve (RFC3339, or YYYY-MM-DDTHH:MM in club time)"
// @Success 200 {object} service.ActiveWindowResponse "Resolution result"
// @Failure 400 {object} map[string]interface{} "Invalid club ID or instant"
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id}/active-shift [get]
func (h *ShiftResolutionHandler) GetActiveShiftWindow(c *gin.Context) {
	clubID, ok := parseUUIDParam(c, "id", "club")
	if !ok {
		return
	}

	result, err := h.resolver.ResolveAt(c.Request.Context(), clubID, c.Query("at"))
	if err != nil {
		respondError(c, err, "Failed to resolve active shift window")
		return
	}

	c.JSON(http.StatusOK, result)
}
