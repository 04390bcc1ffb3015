package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lsweb-studio/apiserver/config"
	"github.com/lsweb-studio/apiserver/internal/db"
	"github.com/lsweb-studio/apiserver/internal/handlers"
	"github.com/lsweb-studio/apiserver/internal/notify"
	"github.com/lsweb-studio/apiserver/internal/services"
	"github.com/lsweb-studio/apiserver/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	notifier   *notify.Mailer
}

// New constructs a Server with its collaborators wired from config.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	jwtSecret := strings.TrimSpace(cfg.JWTSecret)
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	backend, err := notify.NewBackend(ctx, cfg.Notify)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}
	notifier := notify.NewMailer(backend, cfg.Notify.SMTP.From, cfg.Notify.SMTP.To)

	requestRepo := store.NewRequestRepository(dbConn)
	userRepo := store.NewUserRepository(dbConn)

	intakeService := services.NewIntakeService(requestRepo, notifier, logger)
	requestService := services.NewRequestService(requestRepo)
	authService := services.NewAuthService(userRepo, jwtSecret)

	// The original deployment provisioned the admin account at startup;
	// a failure here must not keep the server from serving intake.
	if created, err := authService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logger.Error("admin bootstrap failed", slog.String("error", err.Error()))
	} else if created {
		logger.Info("default admin user created", slog.String("email", cfg.Admin.Email))
	}

	authHandler := handlers.NewAuthHandler(authService, cfg.Admin.Email, cfg.Admin.Password)
	contactHandler := handlers.NewContactHandler(intakeService, requestService)

	router := newRouter(cfg.CORS, authHandler, contactHandler)

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
		notifier:   notifier,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests, then closes the notifier and the
// connection pool. Closing the pool first would fail requests still
// running inside the grace window.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := s.httpServer.Shutdown(ctx)

	if s.notifier != nil {
		_ = s.notifier.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
	return err
}
