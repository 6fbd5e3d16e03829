package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/registry"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends accepted in STORAGE_BACKEND.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

const minJWTSecretLength = 16

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string

	StorageBackend string
	SQLitePath     string
	DatabaseURL    string

	DefaultBaseCurrency string
	Timezone            string
	Location            *time.Location

	// Auth is enabled only when OwnerPasswordHash is set.
	OwnerPasswordHash string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	CORSAllowedOrigins []string
	LoginRateLimit     string // limiter format, e.g. "5-M"

	AMQPURL      string
	AMQPExchange string
}

// AuthEnabled reports whether the API requires a login.
func (c *Config) AuthEnabled() bool {
	return c.OwnerPasswordHash != ""
}

// SlogLevel parses LogLevel, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_BACKEND", StorageMemory)
	v.SetDefault("SQLITE_DB_PATH", "pocket_ledger.db")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("DEFAULT_BASE_CURRENCY", registry.DefaultBaseCode)
	v.SetDefault("TIMEZONE", "Local")
	v.SetDefault("OWNER_PASSWORD_HASH", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "24h")
	v.SetDefault("JWT_ISSUER", "pocket-ledger")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "pocket_ledger.events")

	// Environment variables override the defaults (and whatever .env exported).
	v.AutomaticEnv()

	cfg := &Config{
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		StorageBackend:      strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_BACKEND"))),
		SQLitePath:          v.GetString("SQLITE_DB_PATH"),
		DatabaseURL:         v.GetString("PGSQL_URL"),
		DefaultBaseCurrency: strings.ToUpper(strings.TrimSpace(v.GetString("DEFAULT_BASE_CURRENCY"))),
		Timezone:            v.GetString("TIMEZONE"),
		OwnerPasswordHash:   v.GetString("OWNER_PASSWORD_HASH"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		JWTIssuer:           v.GetString("JWT_ISSUER"),
		CORSAllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		LoginRateLimit:      v.GetString("LOGIN_RATE_LIMIT"),
		AMQPURL:             v.GetString("AMQP_URL"),
		AMQPExchange:        v.GetString("AMQP_EXCHANGE"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if !cfg.AuthEnabled() {
		log.Println("Warning: OWNER_PASSWORD_HASH not set. The API will run without authentication.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and reports every problem at once.
// It also resolves Timezone into Location.
func (c *Config) Validate() error {
	var errs []error

	switch c.StorageBackend {
	case StorageMemory:
	case StorageSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_DB_PATH is required when STORAGE_BACKEND=sqlite"))
		}
	case StoragePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("PGSQL_URL is required when STORAGE_BACKEND=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND must be one of %s, %s, %s (got %q)",
			StorageMemory, StorageSQLite, StoragePostgres, c.StorageBackend))
	}

	if !registry.IsKnown(c.DefaultBaseCurrency) {
		errs = append(errs, fmt.Errorf("DEFAULT_BASE_CURRENCY %q is not a known currency", c.DefaultBaseCurrency))
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err))
	} else {
		c.Location = loc
	}

	if c.AuthEnabled() && len(c.JWTSecret) < minJWTSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d characters when OWNER_PASSWORD_HASH is set", minJWTSecretLength))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q: %w", c.LogLevel, err))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
