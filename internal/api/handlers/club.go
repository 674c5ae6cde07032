package handlers

import (
	"net/http"

	"club-shifts-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ClubHandler handles HTTP requests for clubs
type ClubHandler struct {
	service service.ClubServiceInterface
}

// NewClubHandler creates a new club handler
func NewClubHandler(service service.ClubServiceInterface) *ClubHandler {
	return &ClubHandler{service: service}
}

// CreateClub handles POST /api/v1/clubs
// @Summary Create a new club
// @Description Register a club (tenant). Club names are unique.
// @Tags clubs
// @Accept json
// @Produce json
// @Param club body service.CreateClubRequest true "Club data"
// @Success 201 {object} service.ClubResponse "Successfully created club"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Club already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs [post]
func (h *ClubHandler) CreateClub(c *gin.Context) {
	var req service.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	club, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create club")
		return
	}

	c.JSON(http.StatusCreated, club)
}

// GetClub handles GET /api/v1/clubs/:id
// @Summary Get club by ID
// @Tags clubs
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Success 200 {object} service.ClubResponse "Successfully retrieved club"
// @Failure 400 {object} map[string]interface{} "Invalid club ID"
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs/{id} [get]
func (h *ClubHandler) GetClub(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "club")
	if !ok {
		return
	}

	club, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get club")
		return
	}

	c.JSON(http.StatusOK, club)
}

// ListClubs handles GET /api/v1/clubs
// @Summary List clubs
// @Tags clubs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ClubListResponse "Successfully retrieved clubs"
// @Failure 400 {object} map[string]interface{} "Invalid pagination parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clubs [get]
func (h *ClubHandler) ListClubs(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	clubs, err := h.service.List(page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list clubs")
		return
	}

	c.JSON(http.StatusOK, clubs)
}
