package auth

import (
	"fmt"
	"time"
)

// AuthConfig holds the settings used to sign and verify club tokens
type AuthConfig struct {
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

// NewAuthConfig creates an AuthConfig with the default issuer and a one hour TTL when ttl is zero
func NewAuthConfig(secret string, ttl time.Duration) *AuthConfig {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthConfig{
		JWTSecret: secret,
		Issuer:    "club-shifts-backend",
		TokenTTL:  ttl,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}
