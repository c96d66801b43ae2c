// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants: both expected credentials, the upstream URL and token
// must be present, and every duration and limit must be positive.
//
// All violations are reported together via [errors.Join]; callers can match
// individual groups with [errors.Is].
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Auth.Username == "" || cfg.Auth.Password == "" {
		errs = append(errs, ErrInvalidAuthConfigs)
	}

	if err := cfg.Upstream.validate(); err != nil {
		errs = append(errs, err)
	}

	if cfg.Cache.TTL <= 0 {
		errs = append(errs, fmt.Errorf("%w: ttl must be positive", ErrInvalidCacheConfigs))
	}
	if cfg.Cache.RowLimit <= 0 {
		errs = append(errs, fmt.Errorf("%w: row limit must be positive", ErrInvalidCacheConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs))
	}

	return errors.Join(errs...)
}

func (u *Upstream) validate() error {
	if u.ResourceURL == "" {
		return fmt.Errorf("%w: RESOURCE_URL must be set", ErrInvalidUpstreamConfigs)
	}
	if u.AccessToken == "" {
		return fmt.Errorf("%w: ACCESS_TOKEN must be set", ErrInvalidUpstreamConfigs)
	}

	parsed, err := url.Parse(u.ResourceURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: RESOURCE_URL must be an absolute http(s) URL", ErrInvalidUpstreamConfigs)
	}

	if u.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidUpstreamConfigs)
	}
	if u.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max body bytes must be positive", ErrInvalidUpstreamConfigs)
	}

	return nil
}
