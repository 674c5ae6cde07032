package auth

import (
	"net/http"

	apperrors "club-shifts-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler provides HTTP handlers for token operations
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Token handles POST /api/auth/token. Only registered outside production.
// @Summary Issue a development token
// @Description Sign a club-scoped token for local development and testing
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Token subject"
// @Success 200 {object} TokenResponse "Signed token"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /api/auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	token, err := h.service.GenerateJWT(req.Username, req.ClubID, req.Role)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(h.service.TTL().Seconds()),
	})
}

// Validate handles GET /api/auth/validate
// @Summary Validate the bearer token
// @Description Return the claims of the token in the Authorization header
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AuthValidateResponse "Token is valid"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Router /api/auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}
