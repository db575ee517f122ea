// Package config loads runtime configuration for the peerlink client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file whose path the caller passes in (the client's -c flag).
//  3. PEERLINK_CLIENT_* environment variables, including a .env file in the
//     working directory.
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "30s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "timeout": "30s",
//	  "download_dir": "."
//	}
//
// Primary API
//
//   - type Config                            holds ServerURL, Timeout and DownloadDir
//   - func LoadConfig(path string) (*Config, error)
//   - func (*Config) LoadDefaults()
package config
