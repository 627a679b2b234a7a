package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avikoski/bloglist-api/internal/api"
	apiMiddleware "github.com/avikoski/bloglist-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	userHandler := api.NewUserHandler(app.userStore, app.passwordHasher, app.logger)
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.tokenService,
		app.passwordVerifier,
		app.logger,
	)
	blogHandler := api.NewBlogHandler(app.blogStore, app.userStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/users", userHandler.Create)
		r.Get("/users", userHandler.List)
		r.Post("/login", authHandler.Login)
		r.Get("/blogs", blogHandler.List)

		// Mutating blog endpoints require authentication
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/blogs", blogHandler.Create)
			r.Put("/blogs/{id}", blogHandler.Update)
			r.Delete("/blogs/{id}", blogHandler.Delete)
		})
	})

	// Unmatched routes return 404 with an empty body
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
