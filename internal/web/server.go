// Package web serves rendered artifacts and pipeline results over HTTP.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kozaktomas/eigenfaces/internal/catalog"
	"github.com/kozaktomas/eigenfaces/internal/cluster"
	"github.com/kozaktomas/eigenfaces/internal/config"
)

// Results carries the precomputed pipeline outputs the server exposes.
// The cluster result may be nil when clustering was not requested.
type Results struct {
	Catalog    catalog.Catalog
	Projection [][]float64 // per-face PCA coordinates, catalog order
	Clusters   *cluster.Result
}

// Server exposes the artifact directory and pipeline results.
type Server struct {
	config     *config.Config
	results    *Results
	router     *chi.Mux
	httpServer *http.Server
}

// NewServer creates a web server for the given precomputed results.
func NewServer(cfg *config.Config, results *Results) *Server {
	r := chi.NewRouter()

	s := &Server{
		config:  cfg,
		results: results,
		router:  r,
	}

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	log.Printf("Starting web server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down web server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

// Router returns the chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}
