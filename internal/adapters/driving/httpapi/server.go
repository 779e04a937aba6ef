// Package httpapi exposes the query pipeline over HTTP for the upstream
// gateway. Authentication and meeting-level authorization happen upstream;
// this surface only validates and answers query requests.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/quorumhq/quorum/internal/core/ports/driving"
	"github.com/quorumhq/quorum/internal/logger"
)

// Server serves the query API.
type Server struct {
	query           driving.QueryService
	addr            string
	shutdownTimeout time.Duration
}

// NewServer creates an API server around the query service.
func NewServer(addr string, query driving.QueryService, shutdownTimeout time.Duration) *Server {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 15 * time.Second
	}
	return &Server{
		query:           query,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
	}
}

// Handler builds the route table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /search", s.handleSearch)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return withRequestID(mux)
}

// ListenAndServe runs the server until ctx is cancelled, then drains
// in-flight requests for up to the shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening on %s", s.addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down, draining for up to %s", s.shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// withRequestID tags every request with an id for log correlation and logs
// the outcome.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Debug("HTTP %s %s -> %d (%s) id=%s", r.Method, r.URL.Path, rec.status, time.Since(start), requestID)
	})
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
