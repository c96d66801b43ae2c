// Package server runs the gateway's HTTP listener.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown that lets in-flight requests finish within a bounded time.
package server
