// Package api exposes the round submission pipeline over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	courseservice "github.com/fore-golf/fore-api/app/modules/course/application"
	roundservice "github.com/fore-golf/fore-api/app/modules/round/application"
	"github.com/fore-golf/fore-api/app/modules/round/infrastructure/parsers"
	userservice "github.com/fore-golf/fore-api/app/modules/user/application"
	"github.com/fore-golf/fore-api/config"
	"github.com/fore-golf/fore-api/internal/attr"
)

// Server is the HTTP front of the service.
type Server struct {
	roundService  roundservice.Service
	userService   userservice.Service
	courseService courseservice.Service
	parserFactory *parsers.Factory
	logger        *slog.Logger
	submitLimiter *rate.Limiter
	httpServer    *http.Server
}

// NewServer wires the services into a chi router and returns the server.
func NewServer(
	cfg *config.Config,
	roundService roundservice.Service,
	userService userservice.Service,
	courseService courseservice.Service,
	logger *slog.Logger,
) *Server {
	// A zero configured rate disables submission throttling.
	submitRate := rate.Inf
	if cfg.HTTP.SubmitRatePerSecond > 0 {
		submitRate = rate.Limit(cfg.HTTP.SubmitRatePerSecond)
	}

	s := &Server{
		roundService:  roundService,
		userService:   userService,
		courseService: courseService,
		parserFactory: parsers.NewFactory(),
		logger:        logger,
		submitLimiter: rate.NewLimiter(submitRate, cfg.HTTP.SubmitBurst),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealthz)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.correlationID)
		r.With(s.submitRateLimit).Post("/rounds", s.handleSubmitRound)
		r.Get("/rounds", s.handleGetRounds)
		r.Post("/autofill-scores", s.handleAutofillScores)
		r.Post("/rounds/import", s.handleImportScorecard)
		r.Get("/users/{userID}/handicap-chart", s.handleHandicapChart)
	})

	s.httpServer = &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// correlationID tags every API request so the log lines of the
// synchronous pipeline and the background aggregate updates it triggers
// can be joined.
func (s *Server) correlationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := attr.WithCorrelationID(r.Context(), uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) submitRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.submitLimiter.Allow() {
			s.writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "too many submissions, slow down"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
