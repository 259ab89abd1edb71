package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/restofront/apiserver/config"
	"github.com/restofront/apiserver/internal/auth"
	"github.com/restofront/apiserver/internal/db"
	"github.com/restofront/apiserver/internal/events"
	"github.com/restofront/apiserver/internal/handlers"
	"github.com/restofront/apiserver/internal/mq"
	"github.com/restofront/apiserver/internal/services"
	"github.com/restofront/apiserver/internal/store"
	"github.com/restofront/apiserver/types"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	bus        *mq.MQ
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	bus, err := mq.NewFromConfig(ctx, cfg.MQ)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	codec, err := auth.NewTokenCodec(cfg.Auth)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	publisher := events.NewPublisher(bus)
	userService := services.NewUserService(userRepo, publisher)
	authn := auth.NewAuthenticator(userRepo, codec)
	adminOnly := handlers.RequireRole(authn.RequireRole(types.RoleAdmin))

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Group(func(r chi.Router) {
		handlers.AuthRouter(r, userService, authn)
	})
	router.Route("/admin", func(r chi.Router) {
		handlers.UserAdminRouter(r, userService, adminOnly)
	})

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
		bus:        bus,
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

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	if s.bus != nil {
		_ = s.bus.Close()
	}
	return s.httpServer.Close()
}
