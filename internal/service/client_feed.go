// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

const defaultFeedInterval = 5 * time.Second

// liveFeed polls the server and turns changes into snapshots.
type liveFeed struct {
	adapter adapter.ServerAdapter
	cache   store.LocalItemRepository

	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	subs map[*Subscription]struct{}

	logger *logger.Logger
}

// NewLiveFeed returns a feed polling every interval (5s when not positive).
func NewLiveFeed(serverAdapter adapter.ServerAdapter, cache store.LocalItemRepository, interval time.Duration, logger *logger.Logger) LiveFeed {
	if interval <= 0 {
		interval = defaultFeedInterval
	}

	return &liveFeed{
		adapter:  serverAdapter,
		cache:    cache,
		interval: interval,
		now:      time.Now,
		subs:     make(map[*Subscription]struct{}),
		logger:   logger,
	}
}

// Subscribe fetches the collection once and starts polling.
//
// The initial snapshot is ready on Updates when Subscribe returns. If the
// server cannot be reached the cached snapshot is delivered instead, marked
// FromCache. An expired session is returned as an error.
func (f *liveFeed) Subscribe(ctx context.Context, userID int64) (*Subscription, error) {
	if userID <= 0 {
		return nil, ErrValidationNoUserID
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		updates: make(chan models.Snapshot, 1),
		errs:    make(chan error, 1),
		refresh: make(chan struct{}, 1),
		done:    make(chan struct{}),
		cancel:  cancel,
	}

	initial, fingerprint, err := f.initialSnapshot(subCtx, userID)
	if err != nil {
		cancel()
		return nil, err
	}
	sub.publish(initial)

	f.mu.Lock()
	f.subs[sub] = struct{}{}
	f.mu.Unlock()

	go f.run(subCtx, sub, userID, fingerprint)

	return sub, nil
}

func (f *liveFeed) initialSnapshot(ctx context.Context, userID int64) (models.Snapshot, string, error) {
	items, err := f.adapter.ListItems(ctx)
	if err == nil {
		return f.accept(ctx, userID, items), fingerprint(items), nil
	}

	mapped := mapAdapterError(err)
	if !errors.Is(mapped, ErrServerUnavailable) {
		return models.Snapshot{}, "", fmt.Errorf("initial fetch: %w", mapped)
	}

	cached, cacheErr := f.cache.ListItems(ctx, userID)
	if cacheErr != nil {
		return models.Snapshot{}, "", fmt.Errorf("initial fetch: %w (cache: %w)", mapped, cacheErr)
	}

	f.logger.Warn().Err(err).Int("items", len(cached)).Msg("server unreachable, serving cached snapshot")
	// an empty fingerprint forces the first successful poll to publish
	return models.Snapshot{Items: cached, ReceivedAt: f.now(), FromCache: true}, "", nil
}

// accept stores items as the new cached snapshot. Cache failures are logged
// only: the remote snapshot is still valid.
func (f *liveFeed) accept(ctx context.Context, userID int64, items []models.Item) models.Snapshot {
	if items == nil {
		items = []models.Item{}
	}
	if err := f.cache.ReplaceItems(ctx, userID, items); err != nil {
		f.logger.Err(err).Int64("user_id", userID).Msg("snapshot cache replace failed")
	}

	return models.Snapshot{Items: items, ReceivedAt: f.now()}
}

func (f *liveFeed) run(ctx context.Context, sub *Subscription, userID int64, last string) {
	defer func() {
		f.mu.Lock()
		delete(f.subs, sub)
		f.mu.Unlock()

		close(sub.updates)
		close(sub.errs)
		close(sub.done)
	}()

	t := time.NewTicker(f.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		case <-sub.refresh:
		}

		items, err := f.adapter.ListItems(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			f.logger.Debug().Err(err).Msg("feed poll failed")
			sub.report(mapAdapterError(err))
			continue
		}

		fp := fingerprint(items)
		if fp == last {
			continue
		}
		last = fp

		sub.publish(f.accept(ctx, userID, items))
	}
}

func (f *liveFeed) Refresh() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for sub := range f.subs {
		sub.Refresh()
	}
}

func (f *liveFeed) Close() {
	f.mu.Lock()
	subs := make([]*Subscription, 0, len(f.subs))
	for sub := range f.subs {
		subs = append(subs, sub)
	}
	f.mu.Unlock()

	for _, sub := range subs {
		sub.Cancel()
	}
}

// fingerprint identifies the content of a collection. Any field change,
// insertion, removal or reordering yields a different value.
func fingerprint(items []models.Item) string {
	payload, err := json.Marshal(items)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return string(sum[:])
}

// Subscription is a live view of one user's collection.
//
// Updates holds at most one pending snapshot: a newer snapshot replaces an
// undelivered one. Both channels are closed once the subscription ends.
type Subscription struct {
	updates chan models.Snapshot
	errs    chan error
	refresh chan struct{}
	done    chan struct{}

	cancel context.CancelFunc
	once   sync.Once
}

func (s *Subscription) Updates() <-chan models.Snapshot {
	return s.updates
}

// Errors reports poll failures. Only the latest undelivered one is kept.
func (s *Subscription) Errors() <-chan error {
	return s.errs
}

// Done is closed when the subscription has ended.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Refresh requests an immediate poll. It never blocks.
func (s *Subscription) Refresh() {
	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

// Cancel ends the subscription and waits for the poller to stop.
// Calling it more than once is safe.
func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
	<-s.done
}

// publish and report are called only by the single producer of s.
func (s *Subscription) publish(snap models.Snapshot) {
	for {
		select {
		case s.updates <- snap:
			return
		default:
		}
		select {
		case <-s.updates:
		default:
		}
	}
}

func (s *Subscription) report(err error) {
	for {
		select {
		case s.errs <- err:
			return
		default:
		}
		select {
		case <-s.errs:
		default:
		}
	}
}
