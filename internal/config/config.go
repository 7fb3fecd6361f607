// Package config provides configuration loading and validation for the server
// and CLI. Values come from environment variables; a .env file can be loaded
// by the CLI before Load is called.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the full application configuration.
type Config struct {
	// Server
	Port       string
	CORSOrigin string

	// Storage
	DatabaseURL string

	// Rendering
	ChromePath string // optional override for the headless browser binary

	// AI assistance
	GeminiAPIKey string // empty disables the AI endpoints

	// Notifications
	SMTP SMTPConfig

	JWT      *JWTConfig
	Password *PasswordConfig
}

// SMTPConfig holds the outgoing mail settings. An empty host disables
// email notifications.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether notification mail is configured.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

// Addr returns the host:port dial address.
func (c SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads the configuration from environment variables.
// DATABASE_URL and JWT_SECRET are required; everything else has a default
// or is optional.
func Load() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	jwtConfig, err := NewJWTConfig()
	if err != nil {
		return nil, err
	}

	passwordConfig, err := NewPasswordConfig()
	if err != nil {
		return nil, err
	}

	smtp, err := loadSMTP()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:         envDefault("PORT", "8080"),
		CORSOrigin:   envDefault("CORS_ORIGIN", "*"),
		DatabaseURL:  databaseURL,
		ChromePath:   os.Getenv("CHROME_PATH"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		SMTP:         smtp,
		JWT:          jwtConfig,
		Password:     passwordConfig,
	}, nil
}

func loadSMTP() (SMTPConfig, error) {
	smtp := SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}

	portStr := envDefault("SMTP_PORT", "587")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return SMTPConfig{}, fmt.Errorf("invalid SMTP_PORT: %v", err)
	}
	smtp.Port = port
	return smtp, nil
}

// envDefault returns the environment value or a fallback when unset.
func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
