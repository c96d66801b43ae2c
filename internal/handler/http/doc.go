// Package http implements the HTTP transport layer of the gateway.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as HTTP Basic authentication, request tracing, access
// logging, and response compression are handled in this package before
// requests are delegated to the service layer.
package http
