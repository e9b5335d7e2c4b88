package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort           = "8080"
	defaultJWTSecret      = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer      = "construction-finance-app"
	defaultRateLimit      = "100-M"
	defaultMigrationsPath = "file://migrations"
	defaultLocale         = "es-AR"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string `mapstructure:"PGSQL_URL"`
	Port            string `mapstructure:"PORT"`
	IsProduction    bool   `mapstructure:"IS_PRODUCTION"`
	EnableDBCheck   bool   `mapstructure:"ENABLE_DB_CHECK"`
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	JWTIssuer       string `mapstructure:"JWT_ISSUER"`
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
	// RateLimit uses the ulule/limiter format, e.g. "100-M".
	RateLimit      string `mapstructure:"RATE_LIMIT"`
	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`
	// DefaultLocale is used for organizations created without a locale.
	DefaultLocale string `mapstructure:"DEFAULT_LOCALE"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Environment variables override .env values, which override the defaults.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	v.SetDefault("DEFAULT_LOCALE", defaultLocale)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		FrontendBaseURL: v.GetString("FRONTEND_BASE_URL"),
		RateLimit:       v.GetString("RATE_LIMIT"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		DefaultLocale:   v.GetString("DEFAULT_LOCALE"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret
		slog.Warn("JWT_SECRET not set. Using default insecure key.")
	}
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = defaultLocale
	}

	return cfg, nil
}
