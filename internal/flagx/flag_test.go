package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-c", "conf.json", "-a", ":8080"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=alt.json", "-a", ":8080"},
			allowed: []string{"--config"},
			want:    []string{"--config=alt.json"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "--y=2", "upload"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag without value at end",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-c", "-ttl", "5m"},
			allowed: []string{"-c", "-ttl"},
			want:    []string{"-c", "-ttl", "5m"},
		},
		{
			name:    "several allowed flags keep order",
			args:    []string{"-a", ":8080", "-u", "/tmp/up", "-k", "secret"},
			allowed: []string{"-a", "-u"},
			want:    []string{"-a", ":8080", "-u", "/tmp/up"},
		},
		{
			name:    "empty",
			args:    []string{},
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigPath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "/etc/peerlink.json"}, "/etc/peerlink.json"},
		{"long", []string{"-config", "/etc/long.json"}, "/etc/long.json"},
		{"double dash equals", []string{"--config=/etc/dd.json"}, "/etc/dd.json"},
		{"last wins", []string{"-c", "/1.json", "-config", "/2.json"}, "/2.json"},
		{"mixed with other flags", []string{"-a", ":9000", "-c", "/x.json", "upload"}, "/x.json"},
		{"absent", []string{"-a", ":9000"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigPath(tt.args))
		})
	}
}
