package rest

import (
	"context"
	"net/http"
	"time"
	core_port "wareland-api/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type Handlers struct {
	Catalog    *CatalogHandler
	Auth       *AuthHandlers
	Users      *UserHandlers
	AuthFilter *AuthFilter
	Health     http.HandlerFunc
	Metrics    *Metrics
	Gatherer   prometheus.Gatherer
}

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(cfg ServerConfig, h Handlers, baseLogger core_port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           NewRouter(cfg, h, baseLogger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

// NewRouter builds the full route tree. Catalog, register and login are open;
// everything under the protected group needs an identity from AuthFilter.
func NewRouter(cfg ServerConfig, h Handlers, baseLogger core_port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	if h.Metrics != nil {
		r.Use(h.Metrics.Middleware)
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	r.Use(h.AuthFilter.Handler)

	if h.Health != nil {
		r.Get("/healthz", h.Health)
	}
	if h.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/catalog/properties", func(r chi.Router) {
			r.Get("/", h.Catalog.ListProperties)
			r.Get("/search", h.Catalog.SearchProperties)
			r.Get("/{propertyId}", h.Catalog.GetPropertyDetail)
		})

		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(RequireIdentity)

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/users/me", h.Users.GetMe)
			r.Put("/users/me", h.Users.UpdateMe)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
