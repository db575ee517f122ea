package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerURL)
	assert.Equal(t, time.Duration(0), c.Timeout)
	assert.Equal(t, ".", c.DownloadDir)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServerURL)
}

func TestLoadConfig_EnvOverridesJSON(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeTempJSON(t, "", "", map[string]any{
		"server_url": "http://json.example:8080",
		"timeout":    "5s",
	})
	t.Setenv("PEERLINK_CLIENT_SERVER_URL", "http://env.example:9090")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://env.example:9090", cfg.ServerURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PEERLINK_CLIENT_SERVER_URL", "not a url")

	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/definitely/not/here.json")
	assert.Error(t, err)
}
