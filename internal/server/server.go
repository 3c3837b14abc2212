// Package server provides the HTTP server implementation for the Platea
// application. It handles routing, middleware configuration, and server
// lifecycle management.
//
// The server follows a structured initialization approach with dependency
// injection: store, then auth providers, then services, then handlers, then
// routes. It handles graceful shutdown on SIGINT and SIGTERM.
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

	"github.com/plateahq/Platea_Backend/internal/auth"
	"github.com/plateahq/Platea_Backend/internal/config"
	"github.com/plateahq/Platea_Backend/internal/constants"
	"github.com/plateahq/Platea_Backend/internal/handlers"
	"github.com/plateahq/Platea_Backend/internal/repository"
	"github.com/plateahq/Platea_Backend/internal/service"
	"github.com/plateahq/Platea_Backend/internal/utils/ratelimit"
	"github.com/plateahq/Platea_Backend/scripts"
)

// Handlers contains all HTTP handlers for the application.
type Handlers struct {
	// AuthHandler manages authentication-related endpoints
	AuthHandler *handlers.AuthHandler
}

// AuthProviders contains the authentication components the service layer is
// built from.
type AuthProviders struct {
	// JWTService handles token generation and validation
	JWTService *auth.JWTService

	// Hasher handles password hashing and verification
	Hasher *auth.PasswordHasher

	// Blacklist records revoked tokens until their natural expiry
	Blacklist *auth.TokenBlacklist
}

// Server represents the API server for the Platea application. It
// encapsulates all server components and handles server lifecycle
// management, including initialization, startup, and graceful shutdown.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// Store provides account persistence
	Store repository.UserRepository

	// router handles HTTP routing
	router chi.Router

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	// authProviders contains authentication components
	authProviders *AuthProviders

	// authService implements the authentication business logic
	authService *service.AuthService

	// rateLimits tracks per-client request rates
	rateLimits *ratelimit.Store

	// httpServer is the underlying HTTP server
	httpServer *http.Server
}

// NewServer creates a new server instance with all required components.
// Initialization follows a fixed order: store, auth providers, services,
// handlers, routes. Any failure aborts startup.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	s := &Server{
		Config: cfg,
	}

	if err := s.setupStore(); err != nil {
		return nil, fmt.Errorf("failed to set up user store: %w", err)
	}

	if err := s.setupAuthProviders(); err != nil {
		return nil, fmt.Errorf("failed to set up auth providers: %w", err)
	}

	s.setupServices()
	s.setupHandlers()
	s.setupRateLimits()
	s.SetupRoutes()

	// Development stores get demo accounts so the API is usable immediately.
	if cfg.App.IsDevelopment() {
		seeder := scripts.NewSeeder(s.Store, s.authProviders.Hasher)
		if err := seeder.SeedStore(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Failed to seed user store")
		}
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s, nil
}

// setupStore opens the JSON user store configured in Storage.UserFile.
func (s *Server) setupStore() error {
	store, err := repository.NewFileUserRepository(s.Config.Storage.UserFile)
	if err != nil {
		return err
	}

	s.Store = store
	return nil
}

// setupAuthProviders initializes the token codec, the password hasher and
// the revocation store. A missing JWT secret fails here, before the server
// ever binds a port.
func (s *Server) setupAuthProviders() error {
	jwtService, err := auth.NewJWTService(&s.Config.JWT)
	if err != nil {
		return err
	}

	s.authProviders = &AuthProviders{
		JWTService: jwtService,
		Hasher:     auth.NewPasswordHasher(s.Config.PasswordHash.Cost),
		Blacklist:  auth.NewTokenBlacklist(),
	}

	return nil
}

// setupServices initializes the business services from the store and the
// auth providers.
func (s *Server) setupServices() {
	s.authService = service.NewAuthService(
		s.Store,
		s.authProviders.JWTService,
		s.authProviders.Hasher,
		s.authProviders.Blacklist,
	)
}

// setupHandlers initializes all HTTP request handlers.
func (s *Server) setupHandlers() {
	s.Handlers = &Handlers{
		AuthHandler: handlers.NewAuthHandler(s.authService, s.authProviders.JWTService.Expiry()),
	}
}

// setupRateLimits configures per-client rate limiting for the auth
// endpoints, which are the ones worth brute-forcing.
func (s *Server) setupRateLimits() {
	rate := ratelimit.Rate{
		RequestsPerSecond: s.Config.RateLimit.AuthRequestsPerSecond,
		Burst:             s.Config.RateLimit.AuthBurst,
	}

	s.rateLimits = ratelimit.NewStore(rate)
	s.rateLimits.SetRate("auth", rate)
}

// Start starts the HTTP server and blocks until a server error occurs or a
// shutdown signal (SIGINT, SIGTERM) is received, in which case it shuts
// down gracefully within the configured timeout.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("Failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server, letting in-flight requests
// complete before returning.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Shutting down server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info().Msg("Server stopped")
	return nil
}
