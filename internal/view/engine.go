// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Engine turns a raw item collection into the ordered sequence to display.
//
// Now supplies the instant substituted for an absent CreatedAt.
// It is read once per Apply call so every comparison inside one call sees
// the same value.
type Engine struct {
	Now func() time.Time
}

// NewEngine returns an Engine backed by the wall clock.
func NewEngine() *Engine {
	return &Engine{Now: time.Now}
}

var defaultEngine = NewEngine()

// Apply runs the default engine. See [Engine.Apply].
func Apply(items []models.Item, cfg models.ViewConfig) []models.Item {
	return defaultEngine.Apply(items, cfg)
}

// Apply filters items by cfg.FilterMode, narrows them by cfg.SearchQuery and
// orders the result. The input slice is left untouched.
//
// In FilterAll mode pinned items come first. Within that partition, or across
// the whole result in the other modes, items are ordered by CreatedAt
// according to cfg.SortOrder. Ties keep their input order.
func (e *Engine) Apply(items []models.Item, cfg models.ViewConfig) []models.Item {
	mode := normalizeFilter(cfg.FilterMode)
	query := strings.ToLower(strings.TrimSpace(cfg.SearchQuery))

	out := make([]models.Item, 0, len(items))
	for _, item := range items {
		if !matchesFilter(item, mode) {
			continue
		}
		if !matchesSearch(item, query) {
			continue
		}
		out = append(out, item)
	}

	now := e.now()
	oldestFirst := cfg.SortOrder == models.SortOldest
	pinFirst := mode == models.FilterAll

	slices.SortStableFunc(out, func(a, b models.Item) int {
		if pinFirst && a.IsPinned != b.IsPinned {
			if a.IsPinned {
				return -1
			}
			return 1
		}

		c := createdAt(a, now).Compare(createdAt(b, now))
		if oldestFirst {
			return c
		}
		return -c
	})

	return out
}

func (e *Engine) now() time.Time {
	if e == nil || e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// normalizeFilter maps unknown modes to FilterAll.
func normalizeFilter(m models.FilterMode) models.FilterMode {
	switch m {
	case models.FilterCompleted, models.FilterPinned:
		return m
	default:
		return models.FilterAll
	}
}

func matchesFilter(item models.Item, mode models.FilterMode) bool {
	switch mode {
	case models.FilterCompleted:
		return item.Completed
	case models.FilterPinned:
		return item.IsPinned
	default:
		return true
	}
}

// matchesSearch expects query to be trimmed and lower-cased already.
func matchesSearch(item models.Item, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Title), query) ||
		strings.Contains(strings.ToLower(item.Text), query)
}

// createdAt substitutes now for an absent timestamp, so a just-created item
// sorts as the most recent one.
func createdAt(item models.Item, now time.Time) time.Time {
	if item.CreatedAt == nil {
		return now
	}
	return *item.CreatedAt
}
