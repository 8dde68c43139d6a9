package router

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/http"
	"runtime/pprof"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// statusRecorder keeps the response status for logging and metrics. It stays hijackable so the
// websocket endpoint can upgrade through the middleware chain.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Flush() {
	if f, ok := sr.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (sr *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := sr.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	sr.status = http.StatusSwitchingProtocols
	return hj.Hijack()
}

// EnforceJSONHandler rejects request bodies that are not application/json.
func EnforceJSONHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > 0 {
			contentType := r.Header.Get("Content-Type")
			mt, _, err := mime.ParseMediaType(contentType)
			if err != nil || mt != "application/json" {
				http.Error(w, "Content-Type header must be application/json", http.StatusUnsupportedMediaType)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (api *API) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				api.log.Error("panic while serving request", zap.String("path", r.URL.Path),
					zap.Any("panic", err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type peerAddrKey struct{}

// RealIP sets RemoteAddr from X-Real-IP or the first X-Forwarded-For entry. The socket peer
// stays available through peerAddr.
func RealIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := realIP(r); ip != "" {
			r = r.WithContext(context.WithValue(r.Context(), peerAddrKey{}, r.RemoteAddr))
			r.RemoteAddr = ip
		}
		next.ServeHTTP(w, r)
	})
}

// peerAddr is the address of the connection the request arrived on, before RealIP rewrote it.
func peerAddr(r *http.Request) string {
	if addr, ok := r.Context().Value(peerAddrKey{}).(string); ok {
		return addr
	}
	return r.RemoteAddr
}

func realIP(r *http.Request) string {
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return strings.TrimSpace(xrip)
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	return ""
}

// Heartbeat answers GET/HEAD /endpoint with 200 "." before any other handler.
func Heartbeat(endpoint string) func(http.Handler) http.Handler {
	endpoint = "/" + strings.TrimPrefix(endpoint, "/")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if (r.Method == http.MethodGet || r.Method == http.MethodHead) && strings.EqualFold(r.URL.Path, endpoint) {
				w.Header().Set("Content-Type", "text/plain")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("."))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func Logger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			log.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// Labels tags the goroutine serving the request with its method and path for pprof.
func Labels(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		labels := pprof.Labels("http_method", r.Method, "http_path", r.URL.Path)
		pprof.Do(r.Context(), labels, func(ctx context.Context) {
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter hands out one token bucket per client ip.
type ipRateLimiter struct {
	mu            sync.Mutex
	clients       map[string]*clientLimiter
	limit         rate.Limit
	burst         int
	idleTime      time.Duration
	sweepInterval time.Duration
	lastSweep     time.Time
}

func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		clients:       make(map[string]*clientLimiter),
		limit:         rate.Limit(rps),
		burst:         burst,
		idleTime:      3 * time.Minute,
		sweepInterval: time.Minute,
	}
}

func (rl *ipRateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) >= rl.sweepInterval {
		rl.sweep(now)
	}

	c, ok := rl.clients[ip]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// sweep drops the buckets of clients that went quiet. Callers hold rl.mu.
func (rl *ipRateLimiter) sweep(now time.Time) {
	for k, c := range rl.clients {
		if now.Sub(c.lastSeen) > rl.idleTime {
			delete(rl.clients, k)
		}
	}
	rl.lastSweep = now
}

// Limit answers 429 once a client ip spends its burst faster than rps requests per second.
// Clients are keyed on the socket peer unless trustProxy is set, in which case the address
// RealIP took from the proxy headers is used.
func Limit(rps float64, burst int, trustProxy bool) func(http.Handler) http.Handler {
	rl := newIPRateLimiter(rps, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			addr := peerAddr(r)
			if trustProxy {
				addr = r.RemoteAddr
			}
			ip, _, err := net.SplitHostPort(addr)
			if err != nil {
				ip = addr
			}
			if !rl.allow(ip, time.Now()) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", strconv.Itoa(1))
				w.WriteHeader(http.StatusTooManyRequests)
				fmt.Fprintf(w, `{"error":{"code":%q,"message":"rate limit exceeded"}}`,
					http.StatusText(http.StatusTooManyRequests))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
