package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dom/football-dashboard/internal/api/handlers"
	"github.com/dom/football-dashboard/internal/api/middleware"
	"github.com/dom/football-dashboard/internal/config"
	"github.com/dom/football-dashboard/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CorsOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Liveness endpoints
	r.Get("/", handlers.Status)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	playerHandler := handlers.NewPlayerHandler(services.Player)
	referenceHandler := handlers.NewReferenceHandler(services.Player)

	r.Route("/api", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", playerHandler.List)
			r.Get("/{id}", playerHandler.Get)
			r.Get("/{id}/radar", playerHandler.GetRadar)
		})

		r.Get("/positions", referenceHandler.Positions)
		r.Get("/teams", referenceHandler.Teams)
	})

	return r
}
