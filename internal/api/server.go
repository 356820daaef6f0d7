package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nemeziz1010/pdfoutline/internal/batch"
	"github.com/nemeziz1010/pdfoutline/internal/config"
)

// Server is the HTTP front end for on-demand outline detection.
type Server struct {
	router  chi.Router
	stats   *batch.Stats
	log     *slog.Logger
	cfg     config.Config
	started time.Time
}

// NewServer creates and configures the HTTP server.
func NewServer(cfg config.Config, stats *batch.Stats, log *slog.Logger) *Server {
	s := &Server{
		stats:   stats,
		log:     log,
		cfg:     cfg,
		started: time.Now(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// API endpoints, key-protected when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey))
		}

		r.Post("/api/outline", s.handleOutline)
		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
