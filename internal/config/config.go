package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Groq AI
	GroqAPIKey         string
	GroqBaseURL        string
	Model              string
	Temperature        float64
	MaxTokens          int
	GroqConcurrentReqs int

	// Rate limiting
	RateLimitPerMinute int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port: getEnvOrDefault("PORT", "8080"),
		Env:  getEnvOrDefault("ENV", "development"),

		// A missing API key is reported by /health and rejected per-request,
		// so it is not required at startup.
		GroqAPIKey:         getEnvOrDefault("GROQ_API_KEY", ""),
		GroqBaseURL:        getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		Model:              getEnvOrDefault("MODEL", "llama-3.3-70b-versatile"),
		Temperature:        getEnvAsFloatOrDefault("TEMPERATURE", 0.7),
		MaxTokens:          getEnvAsIntOrDefault("MAX_TOKENS", 1000),
		GroqConcurrentReqs: getEnvAsIntOrDefault("GROQ_CONCURRENT_REQUESTS", 5),

		RateLimitPerMinute: getEnvAsIntOrDefault("RATE_LIMIT_PER_MINUTE", 60),

		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsFloatOrDefault(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}
