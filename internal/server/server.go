// Package server provides the local preview HTTP API over the résumé collection.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jonathan/resume-studio/internal/collection"
	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/ids"
	"github.com/jonathan/resume-studio/internal/server/ratelimit"
	"github.com/jonathan/resume-studio/internal/storage"
	"github.com/jonathan/resume-studio/internal/types"
)

// OriginHeader lets a client name itself as the origin of its writes, so it
// can skip its own change events on /events
const OriginHeader = "X-Resume-Origin"

// DefaultOrigin is used for writes without an OriginHeader. Change events
// reach the hub through the storage.Notifying backend under the reconciler.
const DefaultOrigin = "server"

// Server represents the HTTP server
type Server struct {
	httpServer    *http.Server
	reconciler    *collection.Reconciler
	hub         *storage.Hub
	pdf         *export.PDFRenderer
	rateLimiter *ratelimit.Limiter
	gen         ids.Generator
	profile     types.UserProfile
	template    string
	logger      *slog.Logger
}

// Config holds server configuration
type Config struct {
	Port       int
	Reconciler *collection.Reconciler
	// Hub feeds /events; optional. It only sees writes when the reconciler's
	// backend is a storage.Notifying on the same hub.
	Hub *storage.Hub
	// PDF enables format=pdf on the render endpoint; optional
	PDF       *export.PDFRenderer
	RateLimit *ratelimit.Config
	IDs       ids.Generator
	// Profile and DefaultTemplate seed documents created with POST /resumes
	Profile         types.UserProfile
	DefaultTemplate string
	Logger          *slog.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Reconciler == nil {
		return nil, fmt.Errorf("server requires a reconciler")
	}

	s := &Server{
		reconciler: cfg.Reconciler,
		hub:        cfg.Hub,
		pdf:        cfg.PDF,
		gen:        ids.OrDefault(cfg.IDs),
		profile:    cfg.Profile,
		template:   cfg.DefaultTemplate,
		logger:     cfg.Logger,
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	limits := ratelimit.DefaultConfig()
	if cfg.RateLimit != nil {
		limits = *cfg.RateLimit
	}
	s.rateLimiter = ratelimit.NewLimiter(limits)

	s.httpServer = &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		Handler:     s.Handler(),
		ReadTimeout: 30 * time.Second,
		// WriteTimeout stays zero so /events can stream
		IdleTimeout: 60 * time.Second,
	}
	return s, nil
}

// Handler returns the routed handler with middleware applied
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /templates", s.handleTemplates)

	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("POST /resumes", s.handleCreateResume)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("PUT /resumes/{id}", s.handlePutResume)
	mux.HandleFunc("DELETE /resumes/{id}", s.handleDeleteResume)
	mux.HandleFunc("POST /resumes/{id}/pin", s.handleTogglePin)
	mux.HandleFunc("GET /resumes/{id}/render", s.handleRender)

	mux.HandleFunc("GET /events", s.handleEvents)

	return s.withRateLimit(s.withLogging(s.withCORS(withOrigin(mux))))
}

// Start begins listening for requests and blocks until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	prune := time.NewTicker(5 * time.Minute)
	defer prune.Stop()

	for {
		select {
		case err, ok := <-errCh:
			if ok {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		case <-prune.C:
			s.rateLimiter.Prune()
		case <-ctx.Done():
			s.logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}
			s.logger.Info("server stopped")
			return nil
		}
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+OriginHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withOrigin tags the request context with the writer named by OriginHeader
func withOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get(OriginHeader)
		if origin == "" {
			origin = DefaultOrigin
		}
		next.ServeHTTP(w, r.WithContext(storage.WithOrigin(r.Context(), origin)))
	})
}

// withRateLimit rejects clients that exceed their bucket
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(clientID(r), r.Method, r.URL.Path)
		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
		}
		if !allowed {
			retry := max(1, int(info.RetryAfter.Round(time.Second).Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			s.logger.Warn("rate limit exceeded",
				slog.String("client", clientID(r)),
				slog.String("path", r.URL.Path),
				slog.Int("limit", info.Limit))
			s.errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded, retry later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code for request logs
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)))
	})
}

// clientID uses the remote IP; forwarded headers are not trusted
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode JSON response", slog.Any("error", err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// failure maps err to a status and writes it
func (s *Server) failure(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", slog.Int("status", status), slog.Any("error", err))
	}
	s.errorResponse(w, status, err.Error())
}
