package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv string
	Port   string

	MongoURI string
	MongoDB  string

	JWTSecret     string
	TokenTTL      time.Duration
	ResetTokenTTL time.Duration

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	SMTPHost           string
	SMTPPort           int
	SMTPUser           string
	SMTPPass           string
	SMTPFrom           string
	AdminEmail         string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRefreshToken string

	LogLevel          string
	MemSampleInterval time.Duration
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		AppEnv:             envOr("APP_ENV", "development"),
		Port:               envOr("PORT", "8080"),
		MongoURI:           envOr("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:            envOr("MONGO_DB", "fleetdesk"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		TokenTTL:           envDuration("JWT_EXPIRES_IN", 7*24*time.Hour),
		ResetTokenTTL:      envDuration("RESET_TOKEN_EXPIRES_IN", time.Hour),
		MinioEndpoint:      envOr("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey:     envOr("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey:     envOr("MINIO_SECRET_KEY", "minioadmin"),
		MinioUseSSL:        envBool("MINIO_USE_SSL"),
		MinioBucket:        envOr("MINIO_BUCKET", "driver-images"),
		SMTPHost:           envOr("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           envInt("SMTP_PORT", 587),
		SMTPUser:           os.Getenv("SMTP_USER"),
		SMTPPass:           os.Getenv("SMTP_PASS"),
		SMTPFrom:           os.Getenv("SMTP_FROM"),
		AdminEmail:         os.Getenv("ADMIN_EMAIL"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRefreshToken: os.Getenv("GOOGLE_REFRESH_TOKEN"),
		LogLevel:           envOr("LOG_LEVEL", "info"),
		MemSampleInterval:  envDuration("MEM_SAMPLE_INTERVAL", 5*time.Minute),
	}

	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUser
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = cfg.SMTPUser
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// MailEnabled reports whether the SMTP transport is configured at all.
func (c *Config) MailEnabled() bool {
	return c.SMTPUser != ""
}

// UseOAuth2Mail reports whether Gmail OAuth2 credentials are configured.
func (c *Config) UseOAuth2Mail() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRefreshToken != ""
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}
