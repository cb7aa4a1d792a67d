// Package workers runs the background jobs of the suite server.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// HealthReporter receives the outcome of every store probe.
type HealthReporter interface {
	SetServing(serving bool)
}

// Checker pings the store.
type Checker interface {
	Check(ctx context.Context) error
}
