package server

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/lsweb-studio/apiserver/config"
	"github.com/lsweb-studio/apiserver/internal/handlers"
)

// newRouter builds the middleware stack and routes around the handlers.
func newRouter(corsCfg config.CORSConfig, authHandler *handlers.AuthHandler, contactHandler *handlers.ContactHandler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Get("/healthz", handlers.Healthz)
	router.Post("/contact-request", contactHandler.Create)
	router.Post("/login", authHandler.Login)
	router.Post("/init-admin", authHandler.InitAdmin)
	router.Group(func(r chi.Router) {
		r.Use(authHandler.RequireAuth)
		r.Get("/me", authHandler.Me)
		r.Get("/contact-requests", contactHandler.List)
		r.Get("/contact-requests/stats", contactHandler.Stats)
	})

	return router
}
