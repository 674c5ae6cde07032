package auth

import (
	"context"
	"net/http"
	"strings"

	"club-shifts-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClubIDParam is the path parameter RequireClubAccess checks against the token
const ClubIDParam = "id"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// RequireClubAccess rejects tokens issued for a different club than the :id path
// parameter. Admin tokens may act on any club.
func (m *AuthMiddleware) RequireClubAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		clubID, err := uuid.Parse(c.Param(ClubIDParam))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID"})
			c.Abort()
			return
		}

		if claims.ClubID != clubID && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Token is not valid for this club"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin allows only admin tokens through
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		if !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// setClaims stores the claims in the gin context and copies the identity into the
// request context for logging
func setClaims(c *gin.Context, claims *AuthClaims) {
	c.Set("username", claims.Username)
	c.Set("club_id", claims.ClubID)
	c.Set("role", claims.Role)
	c.Set("auth_claims", claims)

	ctx := context.WithValue(c.Request.Context(), logger.UsernameKey, claims.Username)
	ctx = context.WithValue(ctx, logger.ClubIDKey, claims.ClubID.String())
	c.Request = c.Request.WithContext(ctx)
}

// GetUsername is a helper function to extract username from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
