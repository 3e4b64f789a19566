// Package workers runs the receiver's background jobs. The Workers
// aggregate starts every configured worker with the server and stops
// them on shutdown; today the only job is the stored-file retention
// pruner.
package workers

// Worker is a background job started alongside the HTTP server.
//
// Run must not block: long-running work is expected to happen in
// goroutines the worker spawns internally, as the retention worker's
// ticker loop does. Workers needing graceful shutdown additionally
// expose Stop, which the aggregate discovers by type assertion.
type Worker interface {
	Run()
}
