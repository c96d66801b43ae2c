package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseConfigFile_JSON(t *testing.T) {
	p := writeConfigFile(t, "config.json", `{
		"auth": {"username": "testuser", "password": "testpass"},
		"upstream": {
			"resource_url": "https://example.com/meds.csv",
			"access_token": "fake_token",
			"timeout": "4s",
			"accept": "text/csv",
			"user_agent": "agent",
			"disable_http_cache": true,
			"max_body_bytes": 4096
		},
		"cache": {"ttl": "90s", "row_limit": 100},
		"server": {"http_address": "localhost:8080", "request_timeout": "20s"},
		"app": {"version": "9.9.9"}
	}`)

	cfg, err := parseConfigFile(p)

	require.NoError(t, err)
	assert.Equal(t, "testuser", cfg.Auth.Username)
	assert.Equal(t, "testpass", cfg.Auth.Password)
	assert.Equal(t, "https://example.com/meds.csv", cfg.Upstream.ResourceURL)
	assert.Equal(t, "fake_token", cfg.Upstream.AccessToken)
	assert.Equal(t, 4*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "text/csv", cfg.Upstream.Accept)
	assert.Equal(t, "agent", cfg.Upstream.UserAgent)
	assert.True(t, cfg.Upstream.DisableHTTPCache)
	assert.Equal(t, 4096, cfg.Upstream.MaxBodyBytes)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 100, cfg.Cache.RowLimit)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "9.9.9", cfg.App.Version)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseConfigFile_YAML(t *testing.T) {
	p := writeConfigFile(t, "config.yaml", `
auth:
  username: testuser
  password: testpass
upstream:
  resource_url: https://example.com/meds.csv
  access_token: fake_token
  timeout: 4s
cache:
  ttl: 5m
  row_limit: 250
server:
  http_address: ":9000"
`)

	cfg, err := parseConfigFile(p)

	require.NoError(t, err)
	assert.Equal(t, "testuser", cfg.Auth.Username)
	assert.Equal(t, "fake_token", cfg.Upstream.AccessToken)
	assert.Equal(t, 4*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 250, cfg.Cache.RowLimit)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)
}

func TestParseConfigFile_YMLExtension(t *testing.T) {
	p := writeConfigFile(t, "config.YML", "app:\n  version: \"2.0\"\n")

	cfg, err := parseConfigFile(p)

	require.NoError(t, err)
	assert.Equal(t, "2.0", cfg.App.Version)
}

func TestParseConfigFile_UnsupportedExtension(t *testing.T) {
	p := writeConfigFile(t, "config.toml", "")

	_, err := parseConfigFile(p)

	require.ErrorIs(t, err, ErrUnsupportedConfigFile)
}

func TestParseConfigFile_MissingFile(t *testing.T) {
	_, err := parseConfigFile(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
}

func TestParseConfigFile_InvalidJSON(t *testing.T) {
	p := writeConfigFile(t, "config.json", `{"cache": {"ttl": "forever"}}`)

	_, err := parseConfigFile(p)

	require.Error(t, err)
}

func TestParseConfigFile_InvalidYAML(t *testing.T) {
	p := writeConfigFile(t, "config.yaml", "cache:\n  ttl: forever\n")

	_, err := parseConfigFile(p)

	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1h"`, want: time.Hour},
		{name: "number of nanoseconds", input: `1000`, want: time.Microsecond},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}
