package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Beds24  Beds24Config  `yaml:"beds24"`
	Auth    AuthConfig    `yaml:"auth"`
	Storage StorageConfig `yaml:"storage"`
	Rooms   []RoomEntry   `yaml:"rooms"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
}

// Beds24Config holds the upstream booking API configuration.
// The three credential fields are all optional; whichever is present is
// used according to the session's resolution order.
type Beds24Config struct {
	BaseURL        string        `yaml:"base_url"`
	TimeoutSeconds int           `yaml:"timeout_seconds"`
	Timeout        time.Duration `yaml:"-"` // Ignored by YAML parser
	LongLifeToken  string        `yaml:"long_life_token"`
	RefreshToken   string        `yaml:"refresh_token"`
	InviteCode     string        `yaml:"invite_code"`
}

// AuthConfig holds the report password gate configuration.
// PasswordHash is a bcrypt hash of the shared report password.
type AuthConfig struct {
	PasswordHash string `yaml:"password_hash"`
}

// StorageConfig holds token persistence and report log configuration.
type StorageConfig struct {
	TokenFile        string `yaml:"token_file"`
	DSN              string `yaml:"dsn"`
	ReportTTLMinutes int    `yaml:"report_ttl_minutes"`
}

// RoomEntry maps one (room, unit) pair to a human-readable room label.
type RoomEntry struct {
	RoomID string `yaml:"room_id"`
	UnitID string `yaml:"unit_id"`
	Label  string `yaml:"label"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}

	if cfg.Beds24.BaseURL == "" {
		cfg.Beds24.BaseURL = "https://beds24.com/api/v2"
	}
	if cfg.Beds24.TimeoutSeconds <= 0 {
		cfg.Beds24.TimeoutSeconds = 30
	}
	cfg.Beds24.Timeout = time.Duration(cfg.Beds24.TimeoutSeconds) * time.Second

	if cfg.Auth.PasswordHash == "" {
		return nil, fmt.Errorf("auth.password_hash must be configured")
	}

	if cfg.Storage.TokenFile == "" {
		cfg.Storage.TokenFile = "./tokens.json"
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "./reports.db"
	}
	if cfg.Storage.ReportTTLMinutes <= 0 {
		cfg.Storage.ReportTTLMinutes = 60
	}

	return &cfg, nil
}
