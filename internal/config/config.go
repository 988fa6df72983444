package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	Port             string
	Origin           string
	Environment      string
	LogFilePath      string
	OpenAI           OpenAIConfig
	Gemini           GeminiConfig
	AIRequestTimeout time.Duration
	SessionTTL       time.Duration
}

// OpenAIConfig holds credentials and model selection for the report adapter.
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// GeminiConfig holds credentials and model selection for the chatbot.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	aiTimeoutSeconds, err := strconv.Atoi(getEnv("AI_REQUEST_TIMEOUT_SECONDS", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid AI_REQUEST_TIMEOUT_SECONDS: %w", err)
	}

	sessionTTLMinutes, err := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES: %w", err)
	}

	return &Config{
		Port:        getEnv("PORT", "3001"),
		Origin:      getEnv("ORIGIN", "http://localhost:3000"),
		Environment: getEnv("GO_ENV", "development"),
		LogFilePath: getEnv("LOG_FILE_PATH", "healthmate.log"),
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
			Model:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		AIRequestTimeout: time.Duration(aiTimeoutSeconds) * time.Second,
		SessionTTL:       time.Duration(sessionTTLMinutes) * time.Minute,
	}, nil
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper function to get environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
