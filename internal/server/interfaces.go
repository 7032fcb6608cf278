package server

// Server runs the in-memory REST backend used by cmd/fakeapi.
type Server interface {
	// RunServer serves the fake backend until SIGINT, SIGTERM or SIGQUIT.
	RunServer()

	// Shutdown stops accepting requests and drains in-flight ones.
	Shutdown()
}
