// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines and keep
// running until Stop is called or ctx is cancelled. Stop blocks until all
// work started by the worker has finished.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Start(ctx context.Context) error {
//	    // start background processing
//	    return nil
//	}
//
//	func (w *MyWorker) Stop() {}
type Worker interface {
	Start(ctx context.Context) error
	Stop()
}
