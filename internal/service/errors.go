package service

import "errors"

var (
	// ErrAuthenticationFailed is returned when presented credentials do not
	// match the configured ones.
	ErrAuthenticationFailed = errors.New("invalid authentication credentials")

	// ErrNoExpectedCredentials is returned by NewAuthService when the expected
	// username or password is empty.
	ErrNoExpectedCredentials = errors.New("expected username and password must be set")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNilDependency         = errors.New("nil dependency")
)
