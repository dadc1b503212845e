package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func testConfig(burst int) Config {
	return Config{
		Rate:            rate.Limit(0.001), // no meaningful refill during a test
		Burst:           burst,
		CleanupInterval: time.Hour,
		StaleAfter:      time.Hour,
	}
}

func setupLimitedRouter(limiter *Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/ping", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func doRequest(router *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)

	return w.Code
}

func TestLimiter_BurstExhaustion(t *testing.T) {
	limiter := New(testConfig(3))
	defer limiter.Stop()

	router := setupLimitedRouter(limiter)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doRequest(router, "10.0.0.1:1234"), "request %d within burst", i+1)
	}

	assert.Equal(t, http.StatusTooManyRequests, doRequest(router, "10.0.0.1:1234"))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := New(testConfig(1))
	defer limiter.Stop()

	router := setupLimitedRouter(limiter)

	assert.Equal(t, http.StatusOK, doRequest(router, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(router, "10.0.0.1:1234"))

	// a different client still has its full burst
	assert.Equal(t, http.StatusOK, doRequest(router, "10.0.0.2:1234"))
}

func TestLimiter_CleanupDropsStaleEntries(t *testing.T) {
	limiter := New(Config{
		Rate:            rate.Limit(1),
		Burst:           1,
		CleanupInterval: time.Hour,
		StaleAfter:      time.Nanosecond,
	})
	defer limiter.Stop()

	limiter.allow("10.0.0.1")
	limiter.allow("10.0.0.2")

	time.Sleep(time.Millisecond)
	limiter.cleanup()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Empty(t, limiter.limiters)
}

func TestSignupConfig_StricterThanDefault(t *testing.T) {
	def := DefaultConfig()
	signup := SignupConfig()

	assert.Less(t, float64(signup.Rate), float64(def.Rate))
	assert.Less(t, signup.Burst, def.Burst)
}
