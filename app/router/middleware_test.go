package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		config        *CORSConfig
		origin        string
		wantAllowed   string
	}{
		{"wildcard by default", &CORSConfig{}, "https://shop.example.com", "*"},
		{"exact origin match", &CORSConfig{AllowedOrigins: []string{"https://shop.example.com"}}, "https://shop.example.com", "https://shop.example.com"},
		{"origin not allowed", &CORSConfig{AllowedOrigins: []string{"https://shop.example.com"}}, "https://evil.example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CORSMiddleware(okHandler(), tt.config)
			req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORSMiddleware(okHandler(), &CORSConfig{})
	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	// Other clients are tracked independently
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := RateLimitMiddleware(okHandler(), NewRateLimiter(1, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.RemoteAddr = "1.2.3.4:5555"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimitSkipsPing(t *testing.T) {
	handler := RateLimitMiddleware(okHandler(), NewRateLimiter(1, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "1.2.3.4:5555"
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimitHonorsForwardedFor(t *testing.T) {
	handler := RateLimitMiddleware(okHandler(), NewRateLimiter(1, time.Minute))

	first := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	first.RemoteAddr = "10.0.0.1:1111"
	first.Header.Set("X-Forwarded-For", "9.9.9.9, 10.0.0.1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	require.Equal(t, http.StatusOK, rec.Code)

	// Same forwarded client behind a different proxy address is the same bucket
	second := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	second.RemoteAddr = "10.0.0.2:2222"
	second.Header.Set("X-Forwarded-For", "9.9.9.9")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
