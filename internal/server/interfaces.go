package server

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests until a termination signal arrives, then
	// shuts down gracefully.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
