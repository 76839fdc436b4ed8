package server

import "context"

// Server is the lifecycle contract of the transport servers in this package.
type Server interface {
	// RunServer serves until ctx is cancelled, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops serving and frees the listeners.
	Shutdown(ctx context.Context)
}
