package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/plateahq/Platea_Backend/internal/auth"
	"github.com/plateahq/Platea_Backend/internal/constants"
	"github.com/plateahq/Platea_Backend/internal/middleware"
	"github.com/plateahq/Platea_Backend/internal/utils"
	"github.com/plateahq/Platea_Backend/internal/utils/ratelimit"
)

// SetupRoutes configures the routes for the application.
//
// The configured routes are:
//   - Health check and version endpoints (unprotected)
//   - Authentication endpoints: signup, login, logout (rate limited)
//   - The current-user endpoint (protected)
func (s *Server) SetupRoutes() {
	r := chi.NewRouter()

	// CORS first so its headers reach every response, including errors.
	r.Use(middleware.CORS(s.Config.CORS.AllowedOrigins))

	// Base middleware
	r.Use(auth.RequestID())
	r.Use(middleware.Recovery())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeaders())

	// Health check and version routes (unprotected)
	r.Group(func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			if err := s.Store.HealthCheck(r.Context()); err != nil {
				log.Error().Err(err).Msg("Health check failed")
				utils.Error(w, http.StatusServiceUnavailable, "service_unavailable", "Service is not healthy")
				return
			}

			utils.JSON(w, http.StatusOK, map[string]string{
				"status":  "healthy",
				"version": s.Config.App.Version,
			})
		})

		r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
			utils.JSON(w, http.StatusOK, map[string]string{
				"version":     s.Config.App.Version,
				"environment": s.Config.App.Environment,
			})
		})
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Authentication routes. Rate limited per client IP: these are the
		// endpoints worth brute-forcing.
		r.Route("/auth", func(r chi.Router) {
			r.Use(ratelimit.Middleware(s.rateLimits, constants.RateCategoryAuth))

			r.Post("/signup", s.Handlers.AuthHandler.Register)
			r.Post("/login", s.Handlers.AuthHandler.Login)
			r.Post("/logout", s.Handlers.AuthHandler.Logout)
		})

		// User routes (protected)
		r.Route("/users", func(r chi.Router) {
			r.Use(chimiddleware.NoCache)
			r.Use(auth.RequireAuth(s.authService))

			r.Get("/me", s.Handlers.AuthHandler.GetCurrentUser)
		})
	})

	s.router = r
}

// GetRouter returns the configured router. It is primarily used for testing
// and for integrating the router with other components.
func (s *Server) GetRouter() chi.Router {
	return s.router
}
