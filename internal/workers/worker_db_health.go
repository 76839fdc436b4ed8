// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

const defaultHealthInterval = 10 * time.Second

// DBHealthWorker pings the database on a fixed interval and reports the
// result. Only state changes are logged above debug level.
type DBHealthWorker struct {
	pinger   store.Pinger
	reporter HealthReporter
	interval time.Duration

	logger *logger.Logger
}

func NewDBHealthWorker(pinger store.Pinger, reporter HealthReporter, interval time.Duration, logger *logger.Logger) *DBHealthWorker {
	if interval <= 0 {
		interval = defaultHealthInterval
	}

	return &DBHealthWorker{
		pinger:   pinger,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

// Run probes once right away, then on every tick until ctx is done.
func (w *DBHealthWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	healthy := w.probe(ctx)
	w.logger.Info().Bool("healthy", healthy).Msg("database health worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("database health worker stopped")
			return
		case <-ticker.C:
			now := w.probe(ctx)
			if now != healthy {
				w.logger.Warn().Bool("healthy", now).Msg("database health changed")
				healthy = now
			}
		}
	}
}

// probe pings with a deadline of one interval so a hung connection is
// reported as unhealthy before the next tick.
func (w *DBHealthWorker) probe(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	err := w.pinger.PingContext(pingCtx)
	if err != nil {
		w.logger.Debug().Err(err).Msg("database ping failed")
	}

	if w.reporter != nil {
		w.reporter.SetServing(err == nil)
	}
	return err == nil
}
