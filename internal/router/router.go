package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"niko-backend/internal/handlers"
	"niko-backend/internal/middleware"
)

func New(
	healthHandler *handlers.HealthHandler,
	chatHandler *handlers.ChatHandler,
	summaryHandler *handlers.SummaryHandler,
	frontendURL string,
	rateLimitPerMinute int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.CORS(frontendURL))

	// API rate limiter (per IP)
	apiLimiter := middleware.NewRateLimiter(rateLimitPerMinute, time.Minute)

	// Health check
	r.Get("/health", healthHandler.Check)

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLimiter.Middleware)
		r.Post("/generate", chatHandler.Generate)
		r.Post("/summarize", summaryHandler.Summarize)
	})

	return r
}
