package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for JSON and YAML config files.
// Durations are written as strings like "30s" or "5m".
type fileConfig struct {
	Auth struct {
		Username string `json:"username" yaml:"username"`
		Password string `json:"password" yaml:"password"`
	} `json:"auth" yaml:"auth"`

	Upstream struct {
		ResourceURL      string   `json:"resource_url" yaml:"resource_url"`
		AccessToken      string   `json:"access_token" yaml:"access_token"`
		Timeout          Duration `json:"timeout" yaml:"timeout"`
		Accept           string   `json:"accept" yaml:"accept"`
		UserAgent        string   `json:"user_agent" yaml:"user_agent"`
		DisableHTTPCache bool     `json:"disable_http_cache" yaml:"disable_http_cache"`
		MaxBodyBytes     int      `json:"max_body_bytes" yaml:"max_body_bytes"`
	} `json:"upstream" yaml:"upstream"`

	Cache struct {
		TTL      Duration `json:"ttl" yaml:"ttl"`
		RowLimit int      `json:"row_limit" yaml:"row_limit"`
	} `json:"cache" yaml:"cache"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`

	App struct {
		Version  string `json:"version" yaml:"version"`
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`
}

// parseConfigFile reads a config file, choosing the decoder by extension.
func parseConfigFile(path string) (*StructuredConfig, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJSON(path)
	case ".yaml", ".yml":
		return parseYAML(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, path)
	}
}

func parseJSON(path string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fc fileConfig
	if err := json.NewDecoder(jsonFile).Decode(&fc); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return fc.toStructuredConfig(), nil
}

func parseYAML(path string) (*StructuredConfig, error) {
	yamlFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}
	defer yamlFile.Close()

	var fc fileConfig
	if err := yaml.NewDecoder(yamlFile).Decode(&fc); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	return fc.toStructuredConfig(), nil
}

func (fc *fileConfig) toStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			Username: fc.Auth.Username,
			Password: fc.Auth.Password,
		},
		Upstream: Upstream{
			ResourceURL:      fc.Upstream.ResourceURL,
			AccessToken:      fc.Upstream.AccessToken,
			Timeout:          time.Duration(fc.Upstream.Timeout),
			Accept:           fc.Upstream.Accept,
			UserAgent:        fc.Upstream.UserAgent,
			DisableHTTPCache: fc.Upstream.DisableHTTPCache,
			MaxBodyBytes:     fc.Upstream.MaxBodyBytes,
		},
		Cache: Cache{
			TTL:      time.Duration(fc.Cache.TTL),
			RowLimit: fc.Cache.RowLimit,
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		App: App{
			Version:  fc.App.Version,
			LogLevel: fc.App.LogLevel,
		},
	}
}

// Duration is a wrapper around time.Duration that supports decoding from
// strings like "1h" or "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		var n int64
		if numErr := node.Decode(&n); numErr != nil {
			return err
		}
		tmp = time.Duration(n)
	}

	*d = Duration(tmp)
	return nil
}
