package middleware

import (
	"net/http"
	"sync"
	"time"

	"skillhub/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ThrottleConfig struct {
	Rate  rate.Limit
	Burst int
	// TTL is how long an idle client keeps its limiter before eviction.
	TTL time.Duration
}

type throttler struct {
	cfg      ThrottleConfig
	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewThrottleMiddleware limits requests per client IP. Idle entries are
// evicted on a background ticker so the map does not grow unbounded.
func NewThrottleMiddleware(cfg ThrottleConfig) echo.MiddlewareFunc {
	t := &throttler{
		cfg:      cfg,
		visitors: make(map[string]*visitor),
	}
	go t.cleanupLoop()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !t.allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, apierror.TooManyRequestsError)
			}
			return next(c)
		}
	}
}

func (t *throttler) allow(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(t.cfg.Rate, t.cfg.Burst)}
		t.visitors[ip] = v
	}

	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (t *throttler) cleanupLoop() {
	ticker := time.NewTicker(t.cfg.TTL)
	for range ticker.C {
		t.mu.Lock()
		for ip, v := range t.visitors {
			if time.Since(v.lastSeen) > t.cfg.TTL {
				delete(t.visitors, ip)
			}
		}
		t.mu.Unlock()
	}
}
