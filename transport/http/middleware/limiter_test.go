package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentals/config"
	"rentals/infras/otel/mocks"
	cacheMocks "rentals/shared/cache/mocks"
	"rentals/shared/constant"
	"rentals/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name      string
		count     int64
		err       error
		code      int
		remaining string
	}{
		{name: "first request", count: 1, code: http.StatusOK, remaining: "1"},
		{name: "at the limit", count: 2, code: http.StatusOK, remaining: "0"},
		{name: "over the limit", count: 3, code: http.StatusTooManyRequests, remaining: "0"},
		{name: "cache unavailable", err: errors.New("redis down"), code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
			app := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true), cache)

			cache.EXPECT().
				Increment(gomock.Any(), "limiter:10.0.0.1:curl/8.0", 60).
				Return(tt.count, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/v1/rooms/search", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")
			req.Header.Set(constant.RequestHeaderUserAgent, "curl/8.0")

			rec := httptest.NewRecorder()
			app.RateLimit()(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.remaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	cache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
	app := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(false), cache)

	rec := httptest.NewRecorder()
	app.RateLimit()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTracing_PassesThrough(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	rec := httptest.NewRecorder()
	app.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
