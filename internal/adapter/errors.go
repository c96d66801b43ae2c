package adapter

import (
	"errors"
	"strconv"
)

var (
	// ErrUpstreamConnection covers DNS, TLS, connect and timeout failures.
	ErrUpstreamConnection = errors.New("error connecting to upstream")
	// ErrUpstreamNotFound is returned for HTTP 404.
	ErrUpstreamNotFound = errors.New("resource not found upstream")
	// ErrUpstreamAuthInvalid is returned for HTTP 401: the configured access
	// token is invalid or lacks permissions.
	ErrUpstreamAuthInvalid = errors.New("upstream access token is invalid or lacks permissions")
	// ErrUpstreamUnexpectedStatus is returned for any other non-200 status.
	// The wrapping error carries the literal status code.
	ErrUpstreamUnexpectedStatus = errors.New("upstream returned unexpected status")
	// ErrUpstreamBodyTooLarge is returned when the response body exceeds the
	// configured size limit. The body is not buffered past the limit.
	ErrUpstreamBodyTooLarge = errors.New("upstream response body too large")

	ErrEmptyResourceURL = errors.New("empty upstream resource url")
	ErrEmptyAccessToken = errors.New("empty upstream access token")
)

// UnexpectedStatusError carries the upstream status code of an
// [ErrUpstreamUnexpectedStatus] failure.
type UnexpectedStatusError struct {
	StatusCode int
}

func (e *UnexpectedStatusError) Error() string {
	return ErrUpstreamUnexpectedStatus.Error() + ": " + strconv.Itoa(e.StatusCode)
}

func (e *UnexpectedStatusError) Is(target error) bool {
	return target == ErrUpstreamUnexpectedStatus
}
