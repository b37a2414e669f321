package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/app/config"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/platform/metrics"
)

const sessionContextKey = "session_id"

// SessionMiddleware resolves the browser session for cart endpoints: it reads
// the session cookie and mints a fresh uuid-backed one when absent. The cart
// is scoped to this identifier for the cookie's lifetime.
func SessionMiddleware(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.CookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(cfg.CookieName, sessionID, int(cfg.CookieMaxAge.Seconds()), "/", "", false, true)
		}
		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}

// MetricsMiddleware records per-route latency and counts error responses.
func MetricsMiddleware(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.APILatency.WithLabelValues(route).Observe(time.Since(start).Seconds())
		if status := c.Writer.Status(); status >= http.StatusBadRequest {
			m.APIErrorsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		}
	}
}
