package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"genai-prompt/internal/handlers"
	"genai-prompt/internal/metrics"
	"genai-prompt/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ChatService    service.ChatService
	MovieService   service.MovieService
	LLMPinger      handlers.Pinger
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}

	r.Method(http.MethodGet, "/chat", handlers.NewChatHandler(deps.ChatService))
	r.Method(http.MethodGet, "/movies", handlers.NewMoviesHandler(deps.MovieService))

	if deps.LLMPinger != nil {
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.LLMPinger))
	}
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	return r
}
