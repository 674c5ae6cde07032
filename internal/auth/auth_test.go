package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"club-shifts-backend/internal/database/models"
	"club-shifts-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	service, err := NewAuthService(NewAuthConfig("test-signing-key", time.Hour))
	require.NoError(t, err)
	return service
}

func TestAuthConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config := NewAuthConfig("secret", 0)
		assert.NoError(t, config.ValidateConfig())
		assert.Equal(t, time.Hour, config.TokenTTL)
		assert.Equal(t, "club-shifts-backend", config.Issuer)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		err := NewAuthConfig("", time.Hour).ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")

		_, err = NewAuthService(NewAuthConfig("", time.Hour))
		assert.Error(t, err)
	})
}

func TestJWTOperations(t *testing.T) {
	service := newTestService(t)
	clubID := uuid.New()

	token, err := service.GenerateJWT("recepcion", clubID, models.ClubRoleStaff)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "recepcion", claims.Username)
	assert.Equal(t, clubID, claims.ClubID)
	assert.Equal(t, models.ClubRoleStaff, claims.Role)
	assert.False(t, claims.IsAdmin())

	// Test invalid token
	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)

	// Unknown role is refused at signing time
	_, err = service.GenerateJWT("recepcion", clubID, models.ClubRole("owner"))
	assert.Error(t, err)
}

func TestValidateJWTRejects(t *testing.T) {
	service := newTestService(t)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService(NewAuthConfig("another-key", time.Hour))
		require.NoError(t, err)
		token, err := other.GenerateJWT("x", uuid.New(), models.ClubRoleAdmin)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &AuthClaims{
			Username: "x",
			ClubID:   uuid.New(),
			Role:     models.ClubRoleStaff,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "club-shifts-backend",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		claims := &AuthClaims{
			Username:         "x",
			Role:             models.ClubRoleStaff,
			RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone-else"},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := newTestService(t)
	middleware := NewAuthMiddleware(service)

	clubID := uuid.New()
	staffToken, err := service.GenerateJWT("recepcion", clubID, models.ClubRoleStaff)
	require.NoError(t, err)
	adminToken, err := service.GenerateJWT("dueno", uuid.New(), models.ClubRoleAdmin)
	require.NoError(t, err)

	router := gin.New()
	club := router.Group("/clubs/:id", middleware.RequireAuth(), middleware.RequireClubAccess())
	club.GET("", func(c *gin.Context) {
		username, _ := GetUsername(c)
		c.JSON(http.StatusOK, gin.H{
			"username":    username,
			"log_club_id": c.Request.Context().Value(logger.ClubIDKey),
		})
	})
	club.POST("", middleware.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	do := func(method, path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("GET", "/clubs/"+clubID.String(), "").Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/clubs/"+clubID.String(), nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("own club", func(t *testing.T) {
		w := do("GET", "/clubs/"+clubID.String(), staffToken)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "recepcion", body["username"])
		assert.Equal(t, clubID.String(), body["log_club_id"])
	})

	t.Run("other club", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, do("GET", "/clubs/"+uuid.New().String(), staffToken).Code)
	})

	t.Run("admin any club", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do("GET", "/clubs/"+clubID.String(), adminToken).Code)
	})

	t.Run("invalid club id", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do("GET", "/clubs/not-a-uuid", staffToken).Code)
	})

	t.Run("admin only", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, do("POST", "/clubs/"+clubID.String(), staffToken).Code)
		assert.Equal(t, http.StatusNoContent, do("POST", "/clubs/"+clubID.String(), adminToken).Code)
	})
}

func TestAuthHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := newTestService(t)
	handler := NewAuthHandler(service)

	t.Run("Token endpoint", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"username": "recepcion",
			"club_id":  uuid.New().String(),
			"role":     "staff",
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/api/auth/token", bytes.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.Token(c)

		require.Equal(t, http.StatusOK, w.Code)
		var resp TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, int64(3600), resp.ExpiresIn)

		claims, err := service.ValidateJWT(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "recepcion", claims.Username)
	})

	t.Run("Token endpoint rejects unknown role", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"username": "recepcion",
			"club_id":  uuid.New().String(),
			"role":     "owner",
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/api/auth/token", bytes.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.Token(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Validate without claims", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/api/auth/validate", nil)

		handler.Validate(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
