package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter caps requests per client in fixed one-minute windows. Clients
// are keyed by remote host so a browser cycling ports stays in one window.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	stop    chan struct{}

	now func() time.Time // swapped in tests
}

type window struct {
	count   int
	startAt time.Time
}

// NewRateLimiter starts the limiter with a background sweep that drops stale
// client windows. Call Stop on shutdown.
func NewRateLimiter(sweepInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*window),
		stop:    make(chan struct{}),
		now:     time.Now,
	}
	go rl.sweep(sweepInterval)
	return rl
}

// Stop terminates the background sweep goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit returns middleware rejecting clients that exceed maxPerMinute with
// 429 and a Retry-After pointing at the window reset.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wait, ok := rl.take(clientKey(r), maxPerMinute)
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(wait.Seconds())+1))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take counts one request against the client's current window. When the
// window is exhausted it returns the time left until the window resets.
func (rl *RateLimiter) take(key string, maxPerMinute int) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	win := rl.clients[key]
	if win == nil || now.Sub(win.startAt) >= time.Minute {
		win = &window{startAt: now}
		rl.clients[key] = win
	}

	if win.count >= maxPerMinute {
		return win.startAt.Add(time.Minute).Sub(now), false
	}
	win.count++
	return 0, true
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// sweep drops windows that have been closed for a while, keeping the client
// map bounded under churny traffic.
func (rl *RateLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			cutoff := rl.now().Add(-10 * time.Minute)
			for key, win := range rl.clients {
				if win.startAt.Before(cutoff) {
					delete(rl.clients, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}
