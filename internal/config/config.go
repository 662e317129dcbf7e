package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// LLM provider
	AnthropicAPIKey string
	AnthropicAPIURL string
	AnthropicModel  string
	LLMTimeout      time.Duration

	// Food databases
	USDAAPIKey  string
	USDAAPIURL  string
	OFFAPIURL   string
	FoodTimeout time.Duration

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "nutritrack"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicAPIURL: getEnv("ANTHROPIC_API_URL", "https://api.anthropic.com/v1/messages"),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-5-20250929"),
		LLMTimeout:      parseDuration(getEnv("LLM_TIMEOUT", "60s")),

		USDAAPIKey:  getEnv("USDA_API_KEY", ""),
		USDAAPIURL:  getEnv("USDA_API_URL", "https://api.nal.usda.gov/fdc/v1"),
		OFFAPIURL:   getEnv("OFF_API_URL", "https://world.openfoodfacts.org/api/v2"),
		FoodTimeout: parseDuration(getEnv("FOOD_API_TIMEOUT", "30s")),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
