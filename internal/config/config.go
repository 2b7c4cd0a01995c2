package config

import (
	"fmt"
	"os"
	"strings"
)

// devJWTSecret is used only outside production so local setups work without
// exporting JWT_SECRET. Load refuses to start a production process without an
// explicit secret.
const devJWTSecret = "todoboard-dev-secret"

type Config struct {
	App      AppConfig
	Auth     AuthConfig
	Postgres PostgresConfig
}

type AppConfig struct {
	Env            string
	Port           string
	AllowedOrigins []string
}

type AuthConfig struct {
	JWTSecret string
	// DevSecret reports that the fallback signing key is in use; callers
	// should log a warning.
	DevSecret bool
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

func Load() (Config, error) {
	env := getenv("APP_ENV", "development")

	secret := os.Getenv("JWT_SECRET")
	devSecret := false
	if secret == "" {
		if env == "production" {
			return Config{}, fmt.Errorf("JWT_SECRET is required when APP_ENV=production")
		}
		secret = devJWTSecret
		devSecret = true
	}

	// Production defaults to TLS-verified database connections.
	sslDefault := "disable"
	if env == "production" {
		sslDefault = "require"
	}

	return Config{
		App: AppConfig{
			Env:            env,
			Port:           getenv("PORT", "8080"),
			AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
		},
		Auth: AuthConfig{
			JWTSecret: secret,
			DevSecret: devSecret,
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", sslDefault),
		},
	}, nil
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
