package service

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	DBPath      string

	Placeholder struct {
		Dir       string
		URLPrefix string
	}

	Export struct {
		Dir string
	}

	Image struct {
		FailureRate   float64
		ProviderPause time.Duration
		VariantPause  time.Duration
	}
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
		DBPath:      getEnv("DB_PATH", "./db/social-savvy.db"),
	}

	// Placeholder rendering
	config.Placeholder.Dir = getEnv("PLACEHOLDER_DIR", "./public/placeholders")
	config.Placeholder.URLPrefix = getEnv("PLACEHOLDER_URL_PREFIX", "/public/placeholders")

	// PDF export
	config.Export.Dir = getEnv("EXPORT_DIR", "./data/exports")

	// Image provider simulation
	failureRate := getEnv("IMAGE_FAILURE_RATE", "0.3")
	if rate, err := strconv.ParseFloat(failureRate, 64); err == nil {
		config.Image.FailureRate = rate
	} else {
		config.Image.FailureRate = 0.3
	}
	config.Image.ProviderPause = getDurationEnv("IMAGE_PROVIDER_PAUSE", 300*time.Millisecond)
	config.Image.VariantPause = getDurationEnv("IMAGE_VARIANT_PAUSE", 500*time.Millisecond)

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
