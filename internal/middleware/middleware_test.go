package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/carewave-api/internal/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestRateLimiterWindow(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"))

	now = now.Add(time.Minute)
	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiterDisabled(t *testing.T) {
	r := gin.New()
	r.GET("/", NewRateLimiter(0, time.Minute).Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func newProtectedRouter(tokens *utils.TokenManager, roles ...string) *gin.Engine {
	r := gin.New()
	r.Use(SecurityHeaders(), AuthMiddleware(tokens))
	handlers := []gin.HandlerFunc{}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":    c.GetString(ContextUserID),
			"role":  c.GetString(ContextUserRole),
			"email": c.GetString(ContextUserEmail),
		})
	})
	r.GET("/private", handlers...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := utils.NewTokenManager("middleware-secret")
	r := newProtectedRouter(tokens)
	token, err := tokens.GenerateJWT("u-1", "nurse@carewave.com", "Nurse")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, `{"error":true,"message":"Authentication required"}`},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized, `{"error":true,"message":"Authentication required"}`},
		{"bad token", "Bearer nope", http.StatusUnauthorized, `{"error":true,"message":"Invalid token"}`},
		{"valid", "Bearer " + token, http.StatusOK, `{"id":"u-1","role":"Nurse","email":"nurse@carewave.com"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
			assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		})
	}
}

func TestRequireRole(t *testing.T) {
	tokens := utils.NewTokenManager("middleware-secret")
	r := newProtectedRouter(tokens, "Administrator")

	nurse, err := tokens.GenerateJWT("u-1", "nurse@carewave.com", "Nurse")
	require.NoError(t, err)
	admin, err := tokens.GenerateJWT("u-2", "admin@carewave.com", "Administrator")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+nurse)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":true,"message":"Forbidden: Insufficient permissions"}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
