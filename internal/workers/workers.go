package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the server workers. reporter may be nil when no gRPC
// listener is configured; probes are then only logged.
func NewWorkers(pinger store.Pinger, reporter HealthReporter, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewDBHealthWorker(pinger, reporter, cfg.HealthInterval, logger),
		},
	}
}

// Run starts every worker and waits until all of them return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
