// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks settings shared by both processes.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration < 0 || cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidAppConfigs)
	}

	if cfg.Workers.FeedInterval < 0 || cfg.Workers.HealthInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Client.Mode != "" && cfg.Client.Mode != ModeNotes && cfg.Client.Mode != ModeTodo {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidClientConfigs, cfg.Client.Mode)
	}

	return nil
}

// ValidateServer checks the settings the server cannot start without.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return fmt.Errorf("%w: token settings are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if cfg.Workers.HealthInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.CachePath == "" || strings.Contains(cfg.Storage.CachePath, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.FeedInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.Mode != ModeNotes && cfg.App.Mode != ModeTodo {
		return ErrInvalidClientConfigs
	}

	return nil
}
