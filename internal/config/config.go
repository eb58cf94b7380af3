package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration, read from the environment.
type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	ContentPath string        `env:"PORTFOLIO_CONTENT"`
	StaticDir   string        `env:"PORTFOLIO_STATIC_DIR" envDefault:"./static"`
	DBPath      string        `env:"PORTFOLIO_DB_PATH" envDefault:"data/portfolio.db"`
	Retention   time.Duration `env:"PORTFOLIO_RETENTION" envDefault:"8760h"`
	Tracking    bool          `env:"PORTFOLIO_TRACKING" envDefault:"true"`

	SMTP  SMTP
	Admin Admin
}

// SMTP configures the contact form mailer.
type SMTP struct {
	Host     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	User     string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
	To       string `env:"TO_EMAIL"`
}

// Admin holds the dashboard credentials. An empty password disables the
// login outside of debug mode.
type Admin struct {
	Username string `env:"ADMIN_USERNAME" envDefault:"admin"`
	Password string `env:"ADMIN_PASSWORD"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// TrackingEnabled reports whether visitor analytics have a database to write to.
func (c *Config) TrackingEnabled() bool {
	return c.Tracking && c.DBPath != ""
}
