// Package config provides configuration for the sales agent.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the agent configuration.
type Config struct {
	// Server settings
	HTTPPort  int
	StaticDir string

	// Sales script
	CompanyName   string
	ScriptVersion string

	// Completion service
	OpenAIBaseURL     string
	OpenAIAPIKey      string
	OpenAIModel       string
	Temperature       float64
	MaxTokens         int
	CompletionTimeout time.Duration

	// Lead notifications
	TelegramAPIURL   string
	TelegramBotToken string
	TelegramChatIDs  []string
	NotifyTimeout    time.Duration

	// Database: empty selects the in-memory store.
	DatabaseURL string

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables, reading a .env file
// first when one is present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:          getEnvInt("PORT", 3000),
		StaticDir:         getEnv("STATIC_DIR", "public"),
		CompanyName:       getEnv("COMPANY_NAME", "lidorubov.net"),
		ScriptVersion:     getEnv("SALES_SCRIPT_VERSION", "1.0"),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4"),
		Temperature:       getEnvFloat("OPENAI_TEMPERATURE", 0.3),
		MaxTokens:         getEnvInt("OPENAI_MAX_TOKENS", 500),
		CompletionTimeout: time.Duration(getEnvInt("COMPLETION_TIMEOUT_MS", 15000)) * time.Millisecond,
		TelegramAPIURL:    getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
		TelegramBotToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatIDs:   splitList(os.Getenv("TELEGRAM_CHAT_ID")),
		NotifyTimeout:     time.Duration(getEnvInt("NOTIFY_TIMEOUT_MS", 5000)) * time.Millisecond,
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

// splitList parses a comma-separated value, dropping empty entries.
func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if floatVal, err := strconv.ParseFloat(val, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}
