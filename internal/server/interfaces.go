package server

// Server is the lifecycle contract for a transport server.
//
// RunServer blocks until shutdown is requested; Shutdown stops the server
// gracefully and releases its resources.
type Server interface {
	RunServer()
	Shutdown()
}
