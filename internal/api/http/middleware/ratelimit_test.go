package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestContactRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/contact", ContactRateLimit(rate.Every(time.Hour), 2), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	do := func() int {
		req := httptest.NewRequest("POST", "/contact", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr.Code
	}

	t.Run("allows requests within the burst", func(t *testing.T) {
		assert.Equal(t, http.StatusCreated, do())
		assert.Equal(t, http.StatusCreated, do())
	})

	t.Run("rejects once the burst is spent", func(t *testing.T) {
		assert.Equal(t, http.StatusTooManyRequests, do())
	})
}
