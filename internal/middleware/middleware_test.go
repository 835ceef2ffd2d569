package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura/internal/middleware"
	"aura/pkg/log"
)

func newRouter(mw middleware.Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", handlers...)
	return r
}

func TestScope(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})

	var got string
	r := newRouter(mw, mw.Scope(), func(c *gin.Context) {
		got = middleware.GetScope(c.Request.Context()).UserID
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, middleware.DefaultUserID, got)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.UserIDHeader, " ana ")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "ana", got)
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := newRouter(mw, mw.RequestID(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 and refills one token per second.
	mw := middleware.New(log.NewNop(), middleware.Config{RateLimitPerMin: 60})
	r := newRouter(mw, mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 6; i++ {
		require.Equal(t, http.StatusOK, do("10.0.0.1"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1"))
	assert.Equal(t, http.StatusOK, do("10.0.0.2"), "other clients have their own limiter")
}

func TestRateLimitDisabled(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := newRouter(mw, mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}
