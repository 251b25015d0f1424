package server

// Server is the lifecycle contract of the engine's transport server.
// RunServer blocks until a stop signal arrives; Shutdown drains in-flight
// requests before returning.
type Server interface {
	RunServer()
	Shutdown()
}
