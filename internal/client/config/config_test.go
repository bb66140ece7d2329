package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerURL)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "exports", c.ExportDir)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name:     "all flags",
			args:     []string{"-a", "http://diary:9090", "-i", "10", "-o", "/tmp/out"},
			expected: &Config{ServerURL: "http://diary:9090", OnlineCheckInterval: 10 * time.Second, ExportDir: "/tmp/out"},
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"-z", "1", "-a", "http://diary:9090"},
			expected: &Config{ServerURL: "http://diary:9090"},
		},
		{
			name:    "incorrect check interval",
			args:    []string{"-i", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestParseJson(t *testing.T) {
	dir := t.TempDir()

	t.Run("overlays present keys", func(t *testing.T) {
		path := filepath.Join(dir, "cfg.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"server_url":"http://x:1","online_check_interval":"10s"}`), 0o600))

		cfg := &Config{ExportDir: "keep"}
		require.NoError(t, parseJson(cfg, []string{"-config", path}))

		assert.Equal(t, "http://x:1", cfg.ServerURL)
		assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
		assert.Equal(t, "keep", cfg.ExportDir)
	})

	t.Run("no file flag leaves config alone", func(t *testing.T) {
		cfg := &Config{ServerURL: "defaults"}
		require.NoError(t, parseJson(cfg, nil))
		assert.Equal(t, "defaults", cfg.ServerURL)
	})

	t.Run("invalid json", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ nope`), 0o600))

		err := parseJson(&Config{}, []string{"-c", bad})
		require.ErrorContains(t, err, "parse config file")
	})

	t.Run("missing file", func(t *testing.T) {
		err := parseJson(&Config{}, []string{"-c", filepath.Join(dir, "missing.json")})
		require.ErrorContains(t, err, "read config file")
	})
}

func TestLoad_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_url":"http://json:1","export_dir":"from-json"}`), 0o600))

	cfg, err := load([]string{"-c", path, "-a", "http://flag:2"})
	require.NoError(t, err)

	assert.Equal(t, "http://flag:2", cfg.ServerURL)
	assert.Equal(t, "from-json", cfg.ExportDir)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}
