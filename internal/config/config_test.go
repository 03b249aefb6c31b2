package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:13099", cfg.Server.Address)
	assert.Equal(t, 1024, cfg.Server.ReadBufferSize)
	assert.Equal(t, 50, cfg.Server.BodyTokens)
	assert.Equal(t, 16, cfg.Pool.Workers)
	assert.Equal(t, 10*time.Second, cfg.Pool.StatsInterval)
	assert.True(t, cfg.Admin.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_YAMLKeepsUnsetDefaults(t *testing.T) {
	path := writeFile(t, `
server:
  address: 0.0.0.0:8080
pool:
  workers: 4
  stats_interval: 2s
log:
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address)
	assert.Equal(t, 4, cfg.Pool.Workers)
	assert.Equal(t, 2*time.Second, cfg.Pool.StatsInterval)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 1024, cfg.Server.ReadBufferSize)
	assert.Equal(t, "127.0.0.1:6060", cfg.Admin.Address)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "pool:\n  workers: 4\n")
	t.Setenv("RSERV_WORKERS", "32")
	t.Setenv("RSERV_ADDRESS", "127.0.0.1:9999")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.Pool.Workers)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Address)
	assert.Equal(t, "collector:4318", cfg.Tracing.Endpoint)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		env     map[string]string
		want    string
	}{
		{name: "MissingFile", path: "/nonexistent/config.yaml", want: "read yaml"},
		{name: "BrokenYAML", content: "pool: [", want: "parse yaml"},
		{name: "BadEnv", env: map[string]string{"RSERV_WORKERS": "many"}, want: "parse env"},
		{name: "ZeroWorkers", content: "pool:\n  workers: 0\n", want: "pool.workers must be positive"},
		{name: "NegativeWorkers", env: map[string]string{"RSERV_WORKERS": "-2"}, want: "pool.workers must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := tt.path
			if tt.content != "" {
				path = writeFile(t, tt.content)
			}

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	cfg := Default()
	cfg.Server.Address = ""
	cfg.Server.ReadBufferSize = 0
	cfg.Server.BodyTokens = -1
	cfg.Pool.StatsInterval = 0
	cfg.Admin.Address = ""
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{
		"server.address",
		"server.read_buffer_size",
		"server.body_tokens",
		"pool.stats_interval",
		"admin.address",
		"log.format",
	} {
		assert.Contains(t, err.Error(), want)
	}

	cfg.Admin.Enabled = false
	cfg.Admin.Address = ""
	assert.NotContains(t, cfg.Validate().Error(), "admin.address")
}
