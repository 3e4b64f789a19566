package server

// Server is the lifecycle contract of the upload receiver. RunServer blocks
// serving requests until an OS signal or a fatal error triggers shutdown;
// Shutdown stops the background workers first and then drains the HTTP
// server.
type Server interface {
	// RunServer starts serving and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops workers and the HTTP server.
	Shutdown()
}
