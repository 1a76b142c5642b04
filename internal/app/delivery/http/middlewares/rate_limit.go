package middlewares

import (
	"net"
	"net/http"
	"registrar-service/internal/pkg/constvars"
	"registrar-service/internal/pkg/exceptions"
	"registrar-service/internal/pkg/utils"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type loginVisitor struct {
	limiter      *rate.Limiter
	blockedUntil time.Time
	lastSeen     time.Time
}

// LoginRateLimiter throttles login attempts per client IP. Exhausting the
// attempt budget blocks the IP for the configured number of minutes; the
// regular per-IP limiter on the router stays much looser than this one.
func (m *Middlewares) LoginRateLimiter() func(http.Handler) http.Handler {
	var (
		mu       sync.Mutex
		visitors = make(map[string]*loginVisitor)
	)

	maxAttempts := m.InternalConfig.App.LoginMaxAttempts
	blockTime := time.Duration(m.InternalConfig.App.LoginBlockTimeInMinute) * time.Minute

	// Stale entries are pruned so the table does not grow with every IP seen.
	go func() {
		for range time.Tick(time.Minute) {
			mu.Lock()
			for ip, v := range visitors {
				if time.Since(v.lastSeen) > blockTime && time.Now().After(v.blockedUntil) {
					delete(visitors, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			mu.Lock()
			v, ok := visitors[ip]
			if !ok {
				v = &loginVisitor{
					limiter: rate.NewLimiter(rate.Every(time.Minute), maxAttempts),
				}
				visitors[ip] = v
			}
			v.lastSeen = time.Now()

			if time.Now().Before(v.blockedUntil) {
				mu.Unlock()
				utils.BuildErrorResponse(m.Log, w, exceptions.WrapWithoutError(
					constvars.StatusTooManyRequests,
					constvars.ErrClientTooManyLoginAttempts,
					constvars.ErrDevLoginRateLimited,
				))
				return
			}

			if !v.limiter.Allow() {
				v.blockedUntil = time.Now().Add(blockTime)
				mu.Unlock()
				utils.BuildErrorResponse(m.Log, w, exceptions.WrapWithoutError(
					constvars.StatusTooManyRequests,
					constvars.ErrClientTooManyLoginAttempts,
					constvars.ErrDevLoginRateLimited,
				))
				return
			}
			mu.Unlock()

			next.ServeHTTP(w, r)
		})
	}
}
