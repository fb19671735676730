package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openai/openai-go/option"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"genai-prompt/internal/config"
	"genai-prompt/internal/http"
	"genai-prompt/internal/llm"
	"genai-prompt/internal/metrics"
	"genai-prompt/internal/prompt"
	"genai-prompt/internal/service"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API forwards chat messages to an OpenAI-compatible model and serves templated movie recommendations.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: GenAI Prompt API
//   description: |
//     Direct chat with a chat-completion model, plus a templated prompt endpoint
//     whose JSON reply is parsed and returned as a JSON object.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// produces:
//   - application/json
//   - text/plain

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Create LLM client (external service layer); the key is only handed to the client
	llmClient := llm.NewClient(
		cfg.LLMBaseURL,
		cfg.LLMAPIKey,
		cfg.LLMModelName,
		option.WithMaxRetries(cfg.LLMMaxRetries),
		option.WithRequestTimeout(cfg.LLMTimeout),
	)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName, "max_retries", cfg.LLMMaxRetries)

	// Load prompt templates compiled into the binary
	catalog, err := prompt.Load()
	if err != nil {
		log.Fatalf("Failed to load prompt templates: %v", err)
	}
	moviesTemplate, err := catalog.Get(prompt.MoviesTemplate)
	if err != nil {
		log.Fatalf("Failed to load movies template: %v", err)
	}
	slog.Info("Prompt templates loaded", "templates", catalog.Names())

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Create router with dependencies
	deps := &http.Deps{
		ChatService:    service.NewChatService(llmClient),
		MovieService:   service.NewMovieService(llmClient, moviesTemplate),
		LLMPinger:      llmClient,
		Metrics:        metrics.New(reg),
		MetricsHandler: metrics.Handler(reg),
	}
	router := http.NewRouter(deps)

	server := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Starting API server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
