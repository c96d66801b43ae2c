// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Any of them is a
// fatal startup condition.
var (
	// ErrInvalidAuthConfigs indicates that the expected basic-auth username
	// or password is missing.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration: API_USERNAME and API_PASSWORD must be set")
	// ErrInvalidUpstreamConfigs indicates a missing or malformed upstream
	// resource URL, a missing access token, or a non-positive timeout.
	ErrInvalidUpstreamConfigs = errors.New("invalid upstream configuration")
	// ErrInvalidCacheConfigs indicates a non-positive cache TTL or row limit.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrUnsupportedConfigFile is returned for config files whose extension
	// is neither .json, .yaml nor .yml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
