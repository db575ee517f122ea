package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/peerlink/internal/flagx"
)

// parseFlags overlays command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g. ":8080")
//	-g string   gRPC health bind address, empty disables it
//	-u string   upload directory
//	-h string   transfer listener host
//	-k string   base64 AES-256 key
//	-p string   key passphrase
//	-s string   key salt
//	-t duration offer TTL (e.g. "10m", "0" disables expiry)
//	-w int      max concurrent HTTP requests
//	-m int      max upload size in bytes
//	-l string   log level
//
// Only these flags are parsed; everything else on the command line belongs
// to other consumers (see flagx.FilterArgs).
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-u", "-h", "-k", "-p", "-s", "-t", "-w", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run the HTTP API")
	fs.StringVar(&config.HealthAddrGRPC, "g", config.HealthAddrGRPC, "address and port of the gRPC health service")
	fs.StringVar(&config.UploadDir, "u", config.UploadDir, "upload directory")
	fs.StringVar(&config.TransferHost, "h", config.TransferHost, "host ephemeral listeners bind to")
	fs.StringVar(&config.AESKey, "k", config.AESKey, "base64 AES-256 key")
	fs.StringVar(&config.Passphrase, "p", config.Passphrase, "key passphrase")
	fs.StringVar(&config.KeySalt, "s", config.KeySalt, "key salt")
	fs.DurationVar(&config.OfferTTL, "t", config.OfferTTL, "offer time to live")
	fs.IntVar(&config.MaxWorkers, "w", config.MaxWorkers, "max concurrent requests")
	fs.IntVar(&config.MaxUploadSize, "m", config.MaxUploadSize, "max upload size in bytes")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
