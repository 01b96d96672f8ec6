package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercopilot/backend/config"
	"github.com/careercopilot/backend/models"
)

func newTestJWTService() *JWTService {
	return NewJWTService(&config.Config{
		JWTSecret:      "test-secret",
		JWTExpiryHours: 1,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService()
	user := &models.User{ID: "user-1", Email: "jane@example.com", Name: "Jane"}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "careercopilot", claims.Issuer)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService(&config.Config{JWTSecret: "different", JWTExpiryHours: 1})

	token, err := svc.GenerateToken(&models.User{ID: "u"})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestJWTService()
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	svc := newTestJWTService()
	token, err := svc.GenerateToken(&models.User{ID: "u1", Email: "a@b.c"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(token)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPassword("s3cret", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func protectedRouter(svc *JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(svc), func(c *gin.Context) {
		claims := GetAuthClaims(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})
	r.GET("/optional", OptionalAuthMiddleware(svc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"authenticated": IsAuthenticated(c)})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	svc := newTestJWTService()
	r := protectedRouter(svc)

	// Missing header.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Malformed header.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token.
	token, err := svc.GenerateToken(&models.User{ID: "user-9"})
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-9")
}

func TestOptionalAuthMiddleware(t *testing.T) {
	svc := newTestJWTService()
	r := protectedRouter(svc)

	// No token still succeeds.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/optional", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "false")

	// Valid token marks the request authenticated.
	token, err := svc.GenerateToken(&models.User{ID: "u"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), "true")
}
