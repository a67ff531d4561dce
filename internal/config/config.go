package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultMessagesAPIURL points at the hosted member-messages endpoint.
// Override with MESSAGES_API_URL for local fixtures or staging data.
const DefaultMessagesAPIURL = "https://november7-730026606190.europe-west1.run.app/messages/"

// Config holds application configuration values loaded from environment variables.
type Config struct {
	Host           string
	HTTPPort       string
	MessagesAPIURL string
	CacheTTL       time.Duration
	LLMProvider    string // "openai", "gemini" or "mock"
	LLMModel       string
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	GeminiAPIKey   string
	LogLevel       string
}

// LoadConfig loads configuration from environment variables.
// It looks for a .env file first, then checks actual environment variables.
func LoadConfig() (*Config, error) {
	// .env is a development convenience; absence is fine in production.
	_ = godotenv.Load()

	ttlStr := getEnv("CACHE_TTL_SECONDS", "300")
	ttlSeconds, err := strconv.Atoi(ttlStr)
	if err != nil || ttlSeconds <= 0 {
		return nil, fmt.Errorf("invalid CACHE_TTL_SECONDS %q: must be a positive integer", ttlStr)
	}

	cfg := &Config{
		Host:           getEnv("HOST", "0.0.0.0"),
		HTTPPort:       getEnv("PORT", "8001"),
		MessagesAPIURL: getEnv("MESSAGES_API_URL", DefaultMessagesAPIURL),
		CacheTTL:       time.Duration(ttlSeconds) * time.Second,
		LLMProvider:    getEnv("LLM_PROVIDER", "openai"),
		LLMModel:       os.Getenv("LLM_MODEL"), // empty = adapter default
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY must be set when LLM_PROVIDER=openai")
		}
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY must be set when LLM_PROVIDER=gemini")
		}
	case "mock":
		// No credentials required.
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (expected openai, gemini or mock)", cfg.LLMProvider)
	}

	return cfg, nil
}

// Addr returns the host:port bind address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.HTTPPort
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
