package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the peerlink client.
//
// Fields:
//   - ServerURL: base URL of the peerlink HTTP API.
//   - Timeout: overall limit of a single request; 0 means none.
//   - DownloadDir: where downloads are written when no output path is given.
type Config struct {
	ServerURL   string        `env:"PEERLINK_CLIENT_SERVER_URL" validate:"required,url"`
	Timeout     time.Duration `env:"PEERLINK_CLIENT_TIMEOUT" validate:"min=0"`
	DownloadDir string        `env:"PEERLINK_CLIENT_DOWNLOAD_DIR" validate:"required"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.Timeout = 0
	c.DownloadDir = "."
}

var validate = validator.New()

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the JSON file at path (if not empty) and the environment. Later sources
// take precedence over earlier ones.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	_ = godotenv.Load()

	if err := parseJson(cfg, path); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
