package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr            = ":8080"
	defaultDatabaseURL     = "marketing.db"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultJWTAccessTTL    = "24h"
	defaultUploadDir       = "static/uploads"
	defaultUploadURLPrefix = "/static/uploads"
	defaultPublicBaseURL   = "http://localhost:8080"
)

// Config holds everything the service reads from the environment. Upload
// paths and the public base URL are passed into constructors explicitly;
// nothing below the handlers reads env vars.
type Config struct {
	AppEnv          string
	Addr            string
	DatabaseURL     string
	JWTSecret       string
	JWTAccessTTL    time.Duration
	UploadDir       string
	UploadURLPrefix string
	PublicBaseURL   string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = strings.TrimSpace(getEnv("APP_ADDR", defaultAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.UploadDir = strings.TrimSpace(getEnv("UPLOAD_DIR", defaultUploadDir))
	cfg.UploadURLPrefix = strings.TrimSpace(getEnv("UPLOAD_URL_PREFIX", defaultUploadURLPrefix))
	cfg.PublicBaseURL = strings.TrimRight(strings.TrimSpace(getEnv("PUBLIC_BASE_URL", defaultPublicBaseURL)), "/")

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.UploadDir == "" {
		return fmt.Errorf("UPLOAD_DIR must not be empty")
	}
	if !strings.HasPrefix(cfg.UploadURLPrefix, "/") {
		return fmt.Errorf("UPLOAD_URL_PREFIX must start with /")
	}
	if IsProdLike(cfg.AppEnv) && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

// IsProdLike reports whether the APP_ENV value names a production-style
// deployment.
func IsProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
