package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/peerlink/internal/flagx"
	"github.com/dmitrijs2005/peerlink/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Pointer fields distinguish
// "absent" from zero values so a file only overrides what it names.
type JsonConfig struct {
	HTTPAddr          *string         `json:"http_addr"`
	HealthAddrGRPC    *string         `json:"health_addr_grpc"`
	UploadDir         *string         `json:"upload_dir"`
	TransferHost      *string         `json:"transfer_host"`
	AESKey            *string         `json:"aes_key"`
	Passphrase        *string         `json:"passphrase"`
	KeySalt           *string         `json:"key_salt"`
	OfferTTL          *timex.Duration `json:"offer_ttl"`
	MaxWorkers        *int            `json:"max_workers"`
	MaxUploadSize     *int            `json:"max_upload_size"`
	RemoveServedFiles *bool           `json:"remove_served_files"`
	LogLevel          *string         `json:"log_level"`
	LogFormat         *string         `json:"log_format"`
}

// parseJson loads the file named by -c/-config, if any, into config.
func parseJson(config *Config) error {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	set(&config.HTTPAddr, c.HTTPAddr)
	set(&config.HealthAddrGRPC, c.HealthAddrGRPC)
	set(&config.UploadDir, c.UploadDir)
	set(&config.TransferHost, c.TransferHost)
	set(&config.AESKey, c.AESKey)
	set(&config.Passphrase, c.Passphrase)
	set(&config.KeySalt, c.KeySalt)
	set(&config.MaxWorkers, c.MaxWorkers)
	set(&config.MaxUploadSize, c.MaxUploadSize)
	set(&config.RemoveServedFiles, c.RemoveServedFiles)
	set(&config.LogLevel, c.LogLevel)
	set(&config.LogFormat, c.LogFormat)
	if c.OfferTTL != nil {
		config.OfferTTL = c.OfferTTL.Duration
	}

	return nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
