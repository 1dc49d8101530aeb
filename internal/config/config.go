package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port          string
	DBConn        string
	LogLevel      string
	JWTSecret     string
	MinConfidence float64
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		DBConn:    getEnv("DB_CONN", "host=localhost port=5432 user=planning password=planning dbname=planning sslmode=disable"),
		LogLevel:  getEnv("LOG_LEVEL", "INFO"),
		JWTSecret: getEnv("JWT_SECRET", "secret"),
	}

	minConfidence, err := strconv.ParseFloat(getEnv("MIN_CONFIDENCE", "0.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("MIN_CONFIDENCE must be a number: %w", err)
	}
	if minConfidence < 0 || minConfidence > 1 {
		return nil, fmt.Errorf("MIN_CONFIDENCE must be within [0,1], got %f", minConfidence)
	}
	cfg.MinConfidence = minConfidence

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
