package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/karthikyeluripati/aurora-chatbot/internal/api"
	"github.com/karthikyeluripati/aurora-chatbot/internal/config"
	"github.com/karthikyeluripati/aurora-chatbot/internal/corpus"
	"github.com/karthikyeluripati/aurora-chatbot/internal/handlers"
	"github.com/karthikyeluripati/aurora-chatbot/internal/llm"
	"github.com/karthikyeluripati/aurora-chatbot/internal/qa"
	"github.com/karthikyeluripati/aurora-chatbot/internal/services"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("FATAL: Failed to build logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("starting Aurora QA backend",
		zap.String("addr", cfg.Addr()),
		zap.String("messages_api_url", cfg.MessagesAPIURL),
		zap.String("llm_provider", cfg.LLMProvider))

	// 2. Initialize the corpus pipeline
	sourceClient := corpus.NewClient(cfg.MessagesAPIURL, logger)
	cache := corpus.NewCache(cfg.CacheTTL)
	provider := corpus.NewProvider(sourceClient, cache, logger)

	// 3. Select the completion adapter
	completer, err := newCompleter(cfg)
	if err != nil {
		logger.Fatal("failed to initialize completion client", zap.Error(err))
	}

	// 4. Initialize Services and Handlers
	extractor := qa.NewExtractor(nil)
	builder := qa.NewContextBuilder()
	answerService := services.NewAnswerService(extractor, builder, completer, logger)
	statsService := services.NewStatsService(provider)

	askHandler := handlers.NewAskHandler(provider, answerService, logger)
	statsHandler := handlers.NewStatsHandler(statsService, logger)

	// 5. Setup Router & Start HTTP Server
	router := api.NewRouter(api.RouterDependencies{
		AskHandler:   askHandler,
		StatsHandler: statsHandler,
		Logger:       logger,
	})

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
		// Answering can block on the source fetch plus the completion call,
		// so the write timeout has to cover both.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-stopChan
	logger.Info("shutdown signal received, initiating graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server shutdown complete")
}

func newLogger(level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if level == "debug" {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapCfg.Build()
}

func newCompleter(cfg *config.Config) (llm.Completer, error) {
	switch cfg.LLMProvider {
	case "gemini":
		return llm.NewGeminiCompleter(context.Background(), cfg.GeminiAPIKey, cfg.LLMModel)
	case "mock":
		return llm.NewMockCompleter(), nil
	default:
		return llm.NewOpenAICompleter(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.LLMModel), nil
	}
}
