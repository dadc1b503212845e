package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("SUPABASE_JWT_SECRET")
	authURL := os.Getenv("AUTH_URL")
	authAnonKey := os.Getenv("AUTH_ANON_KEY")
	sessionSecret := os.Getenv("SESSION_SECRET")
	environment := os.Getenv("ENVIRONMENT")
	port := os.Getenv("PORT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// internal/auth reads this from the environment directly; fail fast
	// here so a missing secret is caught at startup, not on first request
	if jwtSecret == "" {
		return nil, fmt.Errorf("SUPABASE_JWT_SECRET environment variable is required")
	}

	if authURL == "" {
		return nil, fmt.Errorf("AUTH_URL environment variable is required")
	}

	if authAnonKey == "" {
		return nil, fmt.Errorf("AUTH_ANON_KEY environment variable is required")
	}

	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	if port == "" {
		port = "8080"
	}

	return &Config{
		DatabaseURL:   databaseURL,
		AuthURL:       authURL,
		AuthAnonKey:   authAnonKey,
		SessionSecret: sessionSecret,
		Environment:   environment,
		Port:          port,
	}, nil
}
