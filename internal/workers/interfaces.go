// Package workers runs the server's background jobs.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// HealthReporter receives the outcome of every database probe.
type HealthReporter interface {
	SetServing(serving bool)
}
