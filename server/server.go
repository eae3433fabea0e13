// Package server provides the HTTP front end for the translation service.
package server

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/DailyRoutines/isptranslator"
)

// Translator resolves a (text, locale) pair through the cache tiers.
type Translator interface {
	Translate(ctx context.Context, text, locale string) (*isptranslator.Result, error)
}

// Config holds server configuration.
type Config struct {
	// AuthToken, when non-empty, is required as a bearer token on the
	// translate endpoint.
	AuthToken string
}

// Server routes HTTP requests to the translation core.
type Server struct {
	translator Translator
	logger     *zap.Logger
	authToken  string
	router     *mux.Router
}

// New creates a Server over the given translator.
func New(translator Translator, logger *zap.Logger, cfg Config) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		translator: translator,
		logger:     logger,
		authToken:  cfg.AuthToken,
		router:     mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.corsMiddleware)
	s.router.Use(s.loggingMiddleware)

	s.router.HandleFunc("/api/translate", s.requireAuth(s.handleTranslate)).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}
