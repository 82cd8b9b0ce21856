package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/dharmasatrya/offerresolver/internal/models"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter keeps one token bucket per client. Clients idle for longer
// than IdleTimeout are dropped on the next sweep, so the map only holds
// recently active clients.
type ClientLimiter struct {
	clients   map[string]*client
	mu        sync.Mutex
	config    RateLimitConfig
	lastSweep time.Time
	now       func() time.Time
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
	IdleTimeout       time.Duration
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
		IdleTimeout:       5 * time.Minute,
	}
}

func NewClientLimiter(config RateLimitConfig) *ClientLimiter {
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = DefaultConfig().IdleTimeout
	}
	return &ClientLimiter{
		clients: make(map[string]*client),
		config:  config,
		now:     time.Now,
	}
}

func (l *ClientLimiter) GetLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.config.IdleTimeout {
		l.sweep(now)
	}

	c, exists := l.clients[key]
	if !exists {
		c = &client{limiter: rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.BurstSize)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter
}

// sweep drops clients not seen within IdleTimeout. Callers hold mu.
func (l *ClientLimiter) sweep(now time.Time) {
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) >= l.config.IdleTimeout {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}

func (l *ClientLimiter) Allow(key string) bool {
	return l.GetLimiter(key).Allow()
}

// Middleware rejects requests over the client's budget with 429. Clients
// are told apart by their real IP.
func (l *ClientLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.Allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:   "rate_limited",
					Message: "Too many requests, slow down",
					Code:    http.StatusTooManyRequests,
				})
			}
			return next(c)
		}
	}
}
