// Package explorer serves read-only introspection of the schema and
// derivation registries over HTTP, plus a resolve endpoint for exercising
// the engine against ad-hoc records. It performs no record persistence or
// fetching.
package explorer

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fieldwork-labs/fieldwork/derive"
	"github.com/fieldwork-labs/fieldwork/record"
	"github.com/fieldwork-labs/fieldwork/schema"
)

// Config holds explorer server configuration
type Config struct {
	// Address is the server listen address (e.g., ":4000")
	Address string

	// Timeouts
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ReadHeaderTimeout time.Duration
}

// DefaultConfig returns a production-ready explorer configuration
func DefaultConfig(address string) *Config {
	return &Config{
		Address:           address,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Server is the schema explorer HTTP server
type Server struct {
	httpServer  *http.Server
	schemas     *schema.Registry
	derivations *derive.Registry
	resolver    *record.Resolver
	logger      *zap.Logger
}

// New creates an explorer server over the given registries. A nil logger
// disables logging.
func New(config *Config, schemas *schema.Registry, derivations *derive.Registry, logger *zap.Logger) (*Server, error) {
	if config == nil {
		return nil, fmt.Errorf("explorer config cannot be nil")
	}
	if schemas == nil || derivations == nil {
		return nil, fmt.Errorf("explorer requires both registries")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		schemas:     schemas,
		derivations: derivations,
		resolver:    record.NewResolver(schemas, derivations),
		logger:      logger,
	}

	s.httpServer = &http.Server{
		Addr:              config.Address,
		Handler:           s.Handler(),
		ReadTimeout:       config.ReadTimeout,
		WriteTimeout:      config.WriteTimeout,
		IdleTimeout:       config.IdleTimeout,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
	}

	return s, nil
}

// Handler builds the explorer's route tree
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Get("/schemas", s.handleListSchemas)
		r.Get("/schemas/{type}", s.handleGetSchema)
		r.Get("/derivations", s.handleListDerivations)
		r.Post("/resolve", s.handleResolve)
	})

	return r
}

// ListenAndServe starts the server and blocks until it stops
func (s *Server) ListenAndServe() error {
	s.logger.Info("explorer listening", zap.String("address", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("explorer shutting down")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
