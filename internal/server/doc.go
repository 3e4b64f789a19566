// Package server wires and runs the receiver's HTTP server.
//
// It provides orchestration for the server lifecycle and the background
// workers attached to it, including startup, signal handling, and graceful
// shutdown.
package server
