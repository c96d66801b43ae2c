// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading requests. Callers can match against
// them with [errors.Is].
var (
	// ErrMissingBasicAuth is returned by the auth middleware when the
	// "Authorization" header is absent or is not a well-formed Basic header.
	ErrMissingBasicAuth = errors.New("not authenticated")

	// ErrInvalidJSONBody is returned when a request body cannot be decoded.
	ErrInvalidJSONBody = errors.New("invalid JSON body")

	// ErrMissingBody is returned when a JSON endpoint receives no body.
	ErrMissingBody = errors.New("request body is required")

	// ErrNameRequired is returned by POST /greet when no name is supplied.
	ErrNameRequired = errors.New("name is required")
)
