package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterWindow(t *testing.T) {
	rl := NewRateLimiter(2, 1)
	now := time.Now()

	assert.True(t, rl.allow("1.1.1.1", now))
	assert.True(t, rl.allow("1.1.1.1", now))
	assert.False(t, rl.allow("1.1.1.1", now))
	assert.True(t, rl.allow("2.2.2.2", now))

	// window moved on
	assert.True(t, rl.allow("1.1.1.1", now.Add(2*time.Second)))
}

func TestRateLimiterForgetsIdleClients(t *testing.T) {
	rl := NewRateLimiter(2, 1)
	now := time.Now()

	assert.True(t, rl.allow("1.1.1.1", now))
	assert.True(t, rl.allow("2.2.2.2", now.Add(2*time.Second)))

	rl.mu.Lock()
	defer rl.mu.Unlock()
	_, kept := rl.ips["1.1.1.1"]
	assert.False(t, kept)
	assert.Len(t, rl.ips, 1)
}

func TestStrictRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/menus", NewStrictRateLimiter(1, 1), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/menus", nil))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/menus", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
