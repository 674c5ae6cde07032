package auth

import (
	"fmt"
	"time"

	"club-shifts-backend/internal/database/models"
	apperrors "club-shifts-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService issues and verifies club-scoped JWTs
type AuthService struct {
	config *AuthConfig
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Username string          `json:"username" example:"recepcion"`
	ClubID   uuid.UUID       `json:"club_id" example:"7f9c2ba4-e88f-11ee-9a22-0242ac120002"`
	Role     models.ClubRole `json:"role" example:"staff"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// IsAdmin reports whether the token carries the admin role
func (c *AuthClaims) IsAdmin() bool {
	return c.Role == models.ClubRoleAdmin
}

// TokenRequest represents the request for a development token
type TokenRequest struct {
	Username string          `json:"username" binding:"required" example:"recepcion"`
	ClubID   uuid.UUID       `json:"club_id" binding:"required"`
	Role     models.ClubRole `json:"role" binding:"required" example:"staff"`
}

// TokenResponse represents an issued token
type TokenResponse struct {
	AccessToken string `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"tokenType" example:"bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"3600"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config}, nil
}

// GenerateJWT signs a token for username acting in clubID with role
func (s *AuthService) GenerateJWT(username string, clubID uuid.UUID, role models.ClubRole) (string, error) {
	if !role.IsValid() {
		return "", apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}

	now := time.Now()
	claims := &AuthClaims{
		Username: username,
		ClubID:   clubID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if !claims.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrInvalidToken, claims.Role)
	}
	return claims, nil
}

// TTL returns the lifetime of issued tokens
func (s *AuthService) TTL() time.Duration {
	return s.config.TokenTTL
}
