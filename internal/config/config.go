package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env         string
	Port        string
	DatabaseURL string

	JWTSecret string
	JWTExpiry time.Duration

	// Timezone used when composing session date + time into a timestamp.
	Timezone string

	AnthropicAPIKey string
	AnthropicModel  string

	SendgridAPIKey string
	FromEmail      string
	// NotifyEmail receives appointment requests.
	NotifyEmail string

	// DataDir holds the locale JSON files fed to the chat assistant.
	DataDir string
}

// Load reads configuration from the environment, with a .env file as a
// local convenience. Only DATABASE_URL and JWT_SECRET are mandatory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("env", "dev")
	v.SetDefault("port", "8080")
	v.SetDefault("jwt_expiry_hours", 72)
	v.SetDefault("timezone", "Europe/Berlin")
	v.SetDefault("anthropic_model", "claude-sonnet-4-20250514")
	v.SetDefault("from_email", "noreply@wesner-software.de")
	v.SetDefault("data_dir", "data")
	v.AutomaticEnv()

	cfg := &Config{
		Env:             v.GetString("env"),
		Port:            v.GetString("port"),
		DatabaseURL:     v.GetString("database_url"),
		JWTSecret:       v.GetString("jwt_secret"),
		JWTExpiry:       time.Duration(v.GetInt("jwt_expiry_hours")) * time.Hour,
		Timezone:        v.GetString("timezone"),
		AnthropicAPIKey: v.GetString("anthropic_api_key"),
		AnthropicModel:  v.GetString("anthropic_model"),
		SendgridAPIKey:  v.GetString("sendgrid_api_key"),
		FromEmail:       v.GetString("from_email"),
		NotifyEmail:     v.GetString("notify_email"),
		DataDir:         v.GetString("data_dir"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}
	if cfg.NotifyEmail == "" {
		cfg.NotifyEmail = cfg.FromEmail
	}
	// A malformed JWT_EXPIRY_HOURS parses as 0, which would issue
	// already-expired tokens.
	if cfg.JWTExpiry <= 0 {
		cfg.JWTExpiry = 72 * time.Hour
	}
	return cfg, nil
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unknown timezone %q, using UTC\n", c.Timezone)
		return time.UTC
	}
	return loc
}

// IsProd reports whether the service runs in production mode.
func (c *Config) IsProd() bool { return c.Env == "prod" || c.Env == "production" }
