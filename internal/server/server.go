package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/sandgrav/catalog-api/internal/config"
	"github.com/sandgrav/catalog-api/internal/constants"
	"github.com/sandgrav/catalog-api/internal/handlers"
)

// Handlers contains all HTTP handlers for the application.
// It centralizes handler management for consistent request processing.
type Handlers struct {
	// Core handles the root endpoint
	Core *handlers.CoreHandler

	// Item handles item endpoints
	Item *handlers.ItemHandler

	// Offer handles offer, image, and index-weight endpoints
	Offer *handlers.OfferHandler

	// User handles user endpoints
	User *handlers.UserHandler

	// Model handles machine learning model endpoints
	Model *handlers.ModelHandler

	// File handles file path endpoints
	File *handlers.FileHandler
}

// Server represents the API server for the catalog application.
// It encapsulates all server components and handles server lifecycle
// management, including initialization, startup, and graceful shutdown.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// router handles HTTP routing
	router chi.Router

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	// httpServer is the underlying HTTP server
	httpServer *http.Server
}

// NewServer creates a new server instance with all required components.
// It initializes the handlers and the route table, then creates the
// underlying HTTP server.
//
// Parameters:
//   - cfg: Application configuration including server and logging settings
//
// Returns:
//   - A fully initialized Server instance ready to start
//   - An error if the route table is malformed
func NewServer(cfg *config.AppConfig) (*Server, error) {
	// Create server instance
	s := &Server{
		Config: cfg,
	}

	// Initialize handlers
	s.setupHandlers()

	// Set up routes; a malformed route table is a startup failure
	if err := s.SetupRoutes(); err != nil {
		return nil, fmt.Errorf("failed to set up routes: %w", err)
	}

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s, nil
}

// setupHandlers initializes all HTTP request handlers.
func (s *Server) setupHandlers() {
	s.Handlers = &Handlers{
		Core:  handlers.NewCoreHandler(),
		Item:  handlers.NewItemHandler(),
		Offer: handlers.NewOfferHandler(),
		User:  handlers.NewUserHandler(),
		Model: handlers.NewModelHandler(),
		File:  handlers.NewFileHandler(),
	}
}

// Router returns the configured router. It is primarily used by tests to
// exercise the full request pipeline without binding a listener.
func (s *Server) Router() chi.Router {
	return s.router
}

// Start starts the HTTP server and sets up signal handling for graceful shutdown.
// It runs in a blocking mode, waiting for either server errors or shutdown signals.
//
// Returns:
//   - An error if the server fails to start or encounters an error during operation
func (s *Server) Start() error {
	// Create a channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start the server in a separate goroutine
	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	// Create a channel to listen for OS signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until an OS signal or an error is received
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		// Create a context with a timeout for graceful shutdown
		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		// Shutdown the server
		if err := s.Shutdown(ctx); err != nil {
			// Shutdown the server immediately if graceful shutdown fails
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server, closing all connections properly.
// It ensures in-flight requests are completed before shutting down.
//
// Parameters:
//   - ctx: Context with timeout for the shutdown operation
//
// Returns:
//   - An error if shutdown fails within the context timeout
func (s *Server) Shutdown(ctx context.Context) error {
	// Shutdown the HTTP server
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")
	return nil
}
