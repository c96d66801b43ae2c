// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Defaults applied when no source provides a value.
const (
	DefaultUpstreamTimeout   = 10 * time.Second
	DefaultUpstreamAccept    = "application/vnd.github.v3.raw"
	DefaultUpstreamUserAgent = "meds-api-client"
	DefaultUpstreamMaxBody   = 10 << 20
	DefaultCacheTTL          = 300 * time.Second
	DefaultRowLimit          = 10000
	DefaultHTTPAddress       = ":8000"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultAppVersion        = "dev"
	DefaultLogLevel          = "info"
	DefaultEnvFile           = ".env"
)

const redactedValue = "[REDACTED]"

// StructuredConfig is the top-level configuration container for the gateway.
// It is populated once at startup and treated as immutable afterwards.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds the expected HTTP Basic credentials for protected routes.
	Auth Auth

	// Upstream describes the remote CSV resource and how to reach it.
	Upstream Upstream

	// Cache holds the freshness window and size limit of the records cache.
	Cache Cache `envPrefix:"CACHE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. Populated via the CONFIG environment variable or the -c / -config
	// flag.
	ConfigFilePath string `env:"CONFIG"`
}

// Auth holds the credentials every caller of a protected route must present.
type Auth struct {
	// Username is the expected basic-auth username.
	// Env: API_USERNAME
	Username string `env:"API_USERNAME"`

	// Password is the expected basic-auth password. Must be kept confidential.
	// Env: API_PASSWORD
	Password string `env:"API_PASSWORD"`
}

// Upstream holds the location of the remote CSV file and the client settings
// used to fetch it.
type Upstream struct {
	// ResourceURL is the absolute URL of the CSV resource, for example a
	// GitHub contents API URL.
	// Env: RESOURCE_URL
	ResourceURL string `env:"RESOURCE_URL"`

	// AccessToken is the personal access token sent as a bearer token.
	// Must be kept confidential.
	// Env: ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// Timeout bounds a single upstream request, connection included.
	// Env: UPSTREAM_TIMEOUT
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT"`

	// Accept is the media type requested from the upstream.
	// Env: UPSTREAM_ACCEPT
	Accept string `env:"UPSTREAM_ACCEPT"`

	// UserAgent identifies the gateway to the upstream host.
	// Env: UPSTREAM_USER_AGENT
	UserAgent string `env:"UPSTREAM_USER_AGENT"`

	// DisableHTTPCache turns off conditional (ETag / Last-Modified)
	// revalidation of upstream responses.
	// Env: UPSTREAM_DISABLE_HTTP_CACHE
	DisableHTTPCache bool `env:"UPSTREAM_DISABLE_HTTP_CACHE"`

	// MaxBodyBytes caps the size of an upstream response body. Larger
	// bodies are rejected without being buffered in full.
	// Env: UPSTREAM_MAX_BODY_BYTES
	MaxBodyBytes int `env:"UPSTREAM_MAX_BODY_BYTES"`
}

// Cache holds settings of the single-slot records cache.
type Cache struct {
	// TTL is how long a fetched batch is served without re-fetching.
	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`

	// RowLimit is the maximum number of data rows accepted from upstream.
	// Env: CACHE_ROW_LIMIT
	RowLimit int `env:"ROW_LIMIT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000" or ":8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// App holds application-level settings.
type App struct {
	// Version is the version string exposed via GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level emitted ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Redacted returns a copy of cfg with every secret replaced by a marker,
// suitable for logging.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	if cfg.Auth.Password != "" {
		cfg.Auth.Password = redactedValue
	}
	if cfg.Upstream.AccessToken != "" {
		cfg.Upstream.AccessToken = redactedValue
	}
	return cfg
}

// GetStructuredConfig loads, merges, and validates the gateway configuration
// from all available sources (see the package documentation for the order).
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(envFilePath()).
		withEnv().
		withFlags(os.Args[1:]).
		withFile().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Upstream: Upstream{
			Timeout:      DefaultUpstreamTimeout,
			Accept:       DefaultUpstreamAccept,
			UserAgent:    DefaultUpstreamUserAgent,
			MaxBodyBytes: DefaultUpstreamMaxBody,
		},
		Cache: Cache{
			TTL:      DefaultCacheTTL,
			RowLimit: DefaultRowLimit,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		App: App{
			Version:  DefaultAppVersion,
			LogLevel: DefaultLogLevel,
		},
	}
}

func envFilePath() string {
	if p, ok := os.LookupEnv("ENV_FILE"); ok {
		return p
	}
	return DefaultEnvFile
}
