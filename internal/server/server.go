// Package server exposes the morphological analyzer as a JSON REST
// API.
//
// Endpoints:
//
//	GET /api/analyze?word=<word>        full pipeline (segment + resolve)
//	GET /api/resolve?prefix=&stem=      resolver only, pre-segmented input
//	GET /api/classes                    class table enumeration
//	GET /healthz
//	GET /metrics
package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/shona-nlp/shonamorph"
)

// Server wires the analyzer to HTTP handlers.
type Server struct {
	analyzer *shonamorph.Analyzer
	logger   *slog.Logger
	origins  []string
	metrics  *metrics
}

// New builds a Server. allowedOrigins feeds the CORS allowlist; an
// empty list denies cross-origin use.
func New(analyzer *shonamorph.Analyzer, logger *slog.Logger, allowedOrigins []string) *Server {
	return &Server{
		analyzer: analyzer,
		logger:   logger.With("component", "server"),
		origins:  allowedOrigins,
		metrics:  newMetrics(),
	}
}

// Handler returns the complete middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/resolve", s.handleResolve)
	mux.HandleFunc("/api/classes", s.handleClasses)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet},
	})
	return s.instrument(c.Handler(mux))
}

// statusRecorder captures the response code for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument logs every request with a generated ID and records the
// Prometheus counters.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		requestID := uuid.NewString()

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		s.metrics.requests.WithLabelValues(r.URL.Path, strconv.Itoa(rec.status)).Inc()
		s.metrics.duration.WithLabelValues(r.URL.Path).Observe(elapsed.Seconds())
		s.logger.Info("request",
			"id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", elapsed.Milliseconds())
	})
}
