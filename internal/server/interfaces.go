package server

// Server defines the lifecycle contract of the gateway's transport server.
//
// Implementations block in [RunServer] until a termination signal arrives or
// the listener fails, and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A nil error means the server was shut down gracefully.
	RunServer() error

	// Shutdown gracefully stops the server.
	Shutdown()
}
