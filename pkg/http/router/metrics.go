package router

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
)

// unmatchedRoute labels every request that no registered route serves.
const unmatchedRoute = "other"

type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roadgraph",
			Name:      "http_requests_total",
			Help:      "number of http requests by method, path and status code.",
		}, []string{"method", "path", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "roadgraph",
			Name:      "http_request_duration_seconds",
			Help:      "http request latency by method and path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "roadgraph",
			Name:      "http_requests_in_flight",
			Help:      "number of http requests being served.",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.inFlight)
	return m
}

// routePattern maps a request path to the route registered on router, so the path label only
// takes as many values as there are routes.
func routePattern(router *httprouter.Router, method, path string) string {
	handle, params, _ := router.Lookup(method, path)
	if handle == nil {
		return unmatchedRoute
	}
	segs := strings.Split(path, "/")
	next := 1
	for _, p := range params {
		if strings.HasPrefix(p.Value, "/") {
			// catch-all, always the last segment
			n := strings.Count(p.Value, "/")
			return strings.Join(segs[:len(segs)-n], "/") + "/*" + p.Key
		}
		for j := next; j < len(segs); j++ {
			if segs[j] == p.Value {
				segs[j] = ":" + p.Key
				next = j + 1
				break
			}
		}
	}
	return strings.Join(segs, "/")
}

// PromeHttpMiddleware records every request in m, labelled by the route router matches.
func PromeHttpMiddleware(m *Metrics, router *httprouter.Router) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			m.inFlight.Inc()
			defer m.inFlight.Dec()

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			route := routePattern(router, r.Method, r.URL.Path)
			m.requests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
			m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
