// Package config handles configuration for the peerlink server: defaults,
// a JSON overlay, environment variables and command-line flags, in that
// order of precedence (later wins).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the peerlink server.
//
// Fields:
//   - HTTPAddr: bind address of the upload/download HTTP API.
//   - HealthAddrGRPC: bind address of the gRPC health service; empty disables it.
//   - UploadDir: where decoded uploads are written until they are served.
//   - TransferHost: loopback address ephemeral listeners bind to and downloads dial.
//   - AESKey: base64 256-bit key sealing port tokens.
//   - Passphrase / KeySalt: Argon2id key source used when AESKey is empty.
//   - OfferTTL: how long an offer waits for its downloader; 0 disables expiry.
//   - MaxWorkers: number of HTTP requests handled concurrently.
//   - MaxUploadSize: upper bound of a request body, in bytes.
//   - RemoveServedFiles: delete stored files once their offer is retired.
//   - LogLevel / LogFormat: slog level and handler ("json" or "text").
type Config struct {
	HTTPAddr          string        `env:"PEERLINK_HTTP_ADDR" validate:"required"`
	HealthAddrGRPC    string        `env:"PEERLINK_HEALTH_ADDR_GRPC"`
	UploadDir         string        `env:"PEERLINK_UPLOAD_DIR" validate:"required"`
	TransferHost      string        `env:"PEERLINK_TRANSFER_HOST" validate:"required,ip"`
	AESKey            string        `env:"PEERLINK_AES_KEY" validate:"omitempty,base64"`
	Passphrase        string        `env:"PEERLINK_PASSPHRASE"`
	KeySalt           string        `env:"PEERLINK_KEY_SALT" validate:"required_with=Passphrase"`
	OfferTTL          time.Duration `env:"PEERLINK_OFFER_TTL" validate:"min=0"`
	MaxWorkers        int           `env:"PEERLINK_MAX_WORKERS" validate:"min=1"`
	MaxUploadSize     int           `env:"PEERLINK_MAX_UPLOAD_SIZE" validate:"min=1"`
	RemoveServedFiles bool          `env:"PEERLINK_REMOVE_SERVED_FILES"`
	LogLevel          string        `env:"PEERLINK_LOG_LEVEL" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat         string        `env:"PEERLINK_LOG_FORMAT" validate:"oneof=json text"`
}

// LoadDefaults populates Config with development defaults. The empty
// AESKey makes the server generate a per-process key.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8080"
	c.HealthAddrGRPC = ":50051"
	c.UploadDir = filepath.Join(os.TempDir(), "peerlink-uploads")
	c.TransferHost = "127.0.0.1"
	c.OfferTTL = 10 * time.Minute
	c.MaxWorkers = 10
	c.MaxUploadSize = 1 << 30
	c.RemoveServedFiles = true
	c.LogLevel = "info"
	c.LogFormat = "json"
}

var validate = validator.New()

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the optional JSON file,
// the environment (including a .env file in the working directory) and
// finally command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	// a missing .env is the normal case
	_ = godotenv.Load()

	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
