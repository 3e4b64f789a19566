// Package http is the upload receiver's transport layer: the public
// POST /upload endpoint the orchestrator targets, the JWT-protected
// /api/files admin surface, and the token and version endpoints.
//
// Middleware handles the cross-cutting concerns — trace-ID injection,
// access logging, gzip, bearer auth, and method guarding — before requests
// reach the service layer.
package http
