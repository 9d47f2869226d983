package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration loaded from the environment.
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	Port string

	// LLM gateway settings.
	LLMBackend    string // "gemini", "ollama" or "canned"
	LLMModel      string
	GeminiAPIKey  string
	LLMTimeout    time.Duration
	LLMMaxRetries int

	// Query executor settings.
	Executor    string // "stub" or "postgres"
	DatabaseURL string
}

// AppConfig holds the application-wide configuration.
var AppConfig *Config

// Load reads configuration from environment variables and stores it in
// AppConfig. Missing values fall back to defaults matching the stub
// deployment (canned LLM response, stub query executor).
func Load() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "8000"),
		LLMBackend:    getEnv("LLM_BACKEND", "canned"),
		LLMModel:      os.Getenv("LLM_MODEL"), // empty selects the backend's default model
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		LLMTimeout:    time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 20)) * time.Second,
		LLMMaxRetries: getEnvInt("LLM_MAX_RETRIES", 2),
		Executor:      getEnv("EXECUTOR", "stub"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
	}

	AppConfig = cfg
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
