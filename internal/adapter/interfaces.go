// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the upstream source-control host that serves the medication CSV file.
//
// The primary abstraction is [UpstreamAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPUpstreamAdapter]) built on a single shared resty
// client.
//
// Error values defined in errors.go are mapped from transport failures and
// HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// without knowing anything about HTTP (e.g. [ErrUpstreamNotFound] for 404,
// [ErrUpstreamAuthInvalid] for 401).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/upstream_adapter_mock.go -package=mock

// UpstreamAdapter fetches the raw upstream resource.
type UpstreamAdapter interface {
	// FetchResource issues exactly one GET request for the configured
	// resource and returns the response body verbatim on HTTP 200.
	//
	// Failures are reported with one of the sentinel errors of this package:
	// [ErrUpstreamConnection], [ErrUpstreamNotFound], [ErrUpstreamAuthInvalid]
	// or [ErrUpstreamUnexpectedStatus]. No retries are made.
	FetchResource(ctx context.Context) (string, error)
}
