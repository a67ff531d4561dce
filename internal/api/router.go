package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/karthikyeluripati/aurora-chatbot/internal/handlers"
)

// RouterDependencies holds all the dependencies required by the router setup.
type RouterDependencies struct {
	AskHandler   *handlers.AskHandler
	StatsHandler *handlers.StatsHandler
	Logger       *zap.Logger
}

// NewRouter creates and configures the main Chi router for the application.
func NewRouter(deps RouterDependencies) *chi.Mux {
	r := chi.NewRouter()

	// --- Base Middleware Stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(deps.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// --- CORS Configuration ---
	// The frontend is served separately; origins stay open like the hosted
	// demo expects. Tighten AllowedOrigins for a production deployment.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", handlers.HandleServiceInfo)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if deps.AskHandler != nil {
		r.Post("/ask", deps.AskHandler.HandleAsk)
	} else {
		deps.Logger.Warn("AskHandler dependency is nil, skipping /ask route")
	}

	if deps.StatsHandler != nil {
		r.Get("/stats", deps.StatsHandler.HandleStats)
	} else {
		deps.Logger.Warn("StatsHandler dependency is nil, skipping /stats route")
	}

	return r
}
