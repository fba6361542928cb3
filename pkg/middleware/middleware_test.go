package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"aura/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func whoami(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": c.GetString(utils.UserIDKey), "trace": c.GetString(utils.TraceIDKey)})
}

func TestJWTAuthMiddleware(t *testing.T) {
	verifier := utils.NewTokenVerifier("test-secret")
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(verifier), whoami)

	valid, err := verifier.CreateToken("64b7f0c2a1b2c3d4e5f60718", "user", time.Hour)
	require.NoError(t, err)
	expired, err := verifier.CreateToken("64b7f0c2a1b2c3d4e5f60718", "user", -time.Minute)
	require.NoError(t, err)
	foreign, err := utils.NewTokenVerifier("other").CreateToken("u", "user", time.Hour)
	require.NoError(t, err)

	tests := map[string]struct {
		header string
		status int
	}{
		"no header":    {"", http.StatusUnauthorized},
		"not bearer":   {"Basic abc", http.StatusUnauthorized},
		"garbage":      {"Bearer abc.def", http.StatusUnauthorized},
		"expired":      {"Bearer " + expired, http.StatusUnauthorized},
		"wrong secret": {"Bearer " + foreign, http.StatusUnauthorized},
		"valid":        {"Bearer " + valid, http.StatusOK},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), "64b7f0c2a1b2c3d4e5f60718")
			}
		})
	}
}

func TestTraceIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", whoami)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	minted := w.Header().Get(TraceIDHeader)
	_, err := uuid.Parse(minted)
	assert.NoError(t, err)

	keep := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, keep)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, keep, w.Header().Get(TraceIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(TraceIDHeader))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(TraceIDMiddleware(), RequestLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Equal(t, "/boom", entries[1].ContextMap()["path"])
	assert.NotEmpty(t, entries[0].ContextMap()["trace_id"])
}

func TestIPRateLimiter(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(3, 15*time.Minute)
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "request %d", i+1)
	}
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "other clients keep their own bucket")

	now = now.Add(5 * time.Minute)
	assert.True(t, l.Allow("10.0.0.1"), "one token refills every window/max")

	now = now.Add(time.Hour)
	l.Allow("10.0.0.3")
	assert.Equal(t, 1, l.Len(), "idle buckets are dropped")
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(NewIPRateLimiter(1, time.Minute)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestJWTAuthMiddleware_StoresOnlyUserID(t *testing.T) {
	verifier := utils.NewTokenVerifier("test-secret")
	token, err := verifier.CreateToken("64b7f0c2a1b2c3d4e5f60718", "admin", time.Hour)
	require.NoError(t, err)

	var keys map[string]any
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(verifier), func(c *gin.Context) {
		keys = c.Keys
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, map[string]any{utils.UserIDKey: "64b7f0c2a1b2c3d4e5f60718"}, keys)
}
