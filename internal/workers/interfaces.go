// Package workers runs the console's background jobs.
//
// It defines the Worker interface and a Workers aggregate that starts and
// stops every job together with the application.
package workers

// Worker is a background job with an explicit lifecycle.
//
// Run must not block: implementations start their own goroutines or
// scheduler. Stop blocks until running work has finished.
type Worker interface {
	Run()
	Stop()
}
