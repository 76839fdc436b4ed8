// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// Context holds every backend handle of a client process. It is created
// once by [Init] and passed explicitly to whoever needs it.
type Context struct {
	Config   *config.ClientConfig
	Storages *store.ClientStorages
	Adapter  adapter.ServerAdapter
	Services *service.ClientServices
	Logger   *logger.Logger
}

// Init builds the server adapter, opens the SQLite cache and wires the
// client services on top of them.
func Init(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*Context, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	return &Context{
		Config:   cfg,
		Storages: storages,
		Adapter:  serverAdapter,
		Services: service.NewClientServices(storages, serverAdapter, cfg.Workers, log),
		Logger:   log,
	}, nil
}

// Teardown cancels live subscriptions and closes the cache. It is safe to
// call on a partially built or nil Context.
func (c *Context) Teardown(_ context.Context) error {
	if c == nil {
		return nil
	}

	if c.Services != nil && c.Services.Feed != nil {
		c.Services.Feed.Close()
	}

	var errs []error
	if err := c.Storages.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close client storages: %w", err))
	}

	if c.Logger != nil {
		c.Logger.Debug().Msg("client context torn down")
	}

	return errors.Join(errs...)
}
