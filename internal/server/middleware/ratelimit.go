package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	serr "github.com/IvanChernomyrdin/go-appointments/internal/shared/errors"
)

type client struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimiter — token bucket на каждый IP клиента.
// Вешается только на регистрацию и проверку пароля.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	r       rate.Limit
	burst   int
	idleTTL time.Duration
}

func NewRateLimiter(rps float64, burst int, idleTTL time.Duration) *RateLimiter {
	if idleTTL <= 0 {
		idleTTL = 3 * time.Minute
	}
	return &RateLimiter{
		clients: make(map[string]*client),
		r:       rate.Limit(rps),
		burst:   burst,
		idleTTL: idleTTL,
	}
}

func (rl *RateLimiter) get(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if c, ok := rl.clients[ip]; ok {
		c.seen = time.Now()
		return c.lim
	}
	l := rate.NewLimiter(rl.r, rl.burst)
	rl.clients[ip] = &client{lim: l, seen: time.Now()}
	return l
}

// Prune забывает клиентов, которых не было дольше idleTTL.
// Возвращает сколько записей удалено.
func (rl *RateLimiter) Prune(now time.Time) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for ip, c := range rl.clients {
		if now.Sub(c.seen) > rl.idleTTL {
			delete(rl.clients, ip)
			removed++
		}
	}
	return removed
}

// Len — количество отслеживаемых клиентов.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Cleanup раз в минуту чистит неактивных клиентов, пока жив ctx.
// Запускается из main в errgroup вместе с сервером.
func (rl *RateLimiter) Cleanup(ctx context.Context) error {
	t := time.NewTicker(time.Minute)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-t.C:
			rl.Prune(now)
		}
	}
}

// Middleware отвечает 429, если IP исчерпал лимит.
// За прокси реальный IP подставляет chi RealIP (server.trust_proxy).
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.get(clientIP(r)).Allow() {
				w.Header().Set("Retry-After", "1")
				writeJSONString(w, http.StatusTooManyRequests, serr.ErrTooManyRequests.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if r.RemoteAddr == "" {
			return "unknown"
		}
		return r.RemoteAddr
	}
	return host
}
