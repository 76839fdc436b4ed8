// Package server runs the HTTP and gRPC listeners of the note keeper
// server and shuts them down gracefully when the run context ends.
package server
