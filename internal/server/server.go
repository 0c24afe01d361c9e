// Package server exposes the HTTP API: the aggregated rates view and the
// cron-triggered extraction endpoint. Transport and auth live here so the
// pipeline stays free of HTTP concerns.
package server

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"freight-rate-watch/internal/service"
)

// RatesService is the slice of the pipeline service the API consumes.
type RatesService interface {
	RatesView(ctx context.Context, asOf time.Time) (service.View, error)
	RunExtraction(ctx context.Context, day time.Time) (service.ExtractionResult, error)
}

// Options parameterise the HTTP server.
type Options struct {
	ListenAddr        string
	CronSecret        string
	TrustedCronHeader string
	CORSOrigins       []string
}

// Server is the HTTP API server.
type Server struct {
	opts   Options
	svc    RatesService
	logger zerolog.Logger
	router chi.Router
}

// New builds a server with all routes and middleware configured.
func New(opts Options, svc RatesService, logger zerolog.Logger) *Server {
	s := &Server{
		opts:   opts,
		svc:    svc,
		logger: logger.With().Str("component", "server").Logger(),
	}
	s.router = s.buildRouter()
	return s
}

// Router returns the configured handler, exposed for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	origins := s.opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Cron-Secret"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/rates", s.handleRates)
		r.Post("/cron/extract", s.handleCronExtract)
	})
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:         s.opts.ListenAddr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()
	s.logger.Info().Str("addr", s.opts.ListenAddr).Msg("http server listening")

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}

// authorized accepts either the shared cron secret or, when configured,
// the presence of a trusted-scheduler header that the fronting platform
// strips from external traffic.
func (s *Server) authorized(r *http.Request) bool {
	if s.opts.CronSecret != "" {
		provided := r.Header.Get("X-Cron-Secret")
		if provided != "" && subtle.ConstantTimeCompare([]byte(provided), []byte(s.opts.CronSecret)) == 1 {
			return true
		}
	}
	if s.opts.TrustedCronHeader != "" && r.Header.Get(s.opts.TrustedCronHeader) != "" {
		return true
	}
	return false
}
