// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FilterMode selects which items are members of the derived view.
type FilterMode string

const (
	FilterAll       FilterMode = "all"
	FilterCompleted FilterMode = "completed"
	FilterPinned    FilterMode = "pinned"
)

// FilterModes lists the filter modes in the order the client cycles through them.
var FilterModes = []FilterMode{FilterAll, FilterPinned, FilterCompleted}

// SortOrder orders the derived view by creation time.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// DisplayMode affects layout only, never membership or ordering.
type DisplayMode string

const (
	DisplayGrid DisplayMode = "grid"
	DisplayList DisplayMode = "list"
)

// ViewConfig is the ephemeral presentation state of a client session.
// It is never persisted.
type ViewConfig struct {
	FilterMode  FilterMode
	SearchQuery string
	SortOrder   SortOrder
	DisplayMode DisplayMode
}

// DefaultViewConfig returns the configuration a fresh session starts with.
func DefaultViewConfig() ViewConfig {
	return ViewConfig{
		FilterMode:  FilterAll,
		SortOrder:   SortNewest,
		DisplayMode: DisplayGrid,
	}
}

// NextFilterMode returns the mode following m in FilterModes.
func NextFilterMode(m FilterMode) FilterMode {
	for i, mode := range FilterModes {
		if mode == m {
			return FilterModes[(i+1)%len(FilterModes)]
		}
	}
	return FilterAll
}

// Toggle returns the opposite sort order.
func (s SortOrder) Toggle() SortOrder {
	if s == SortOldest {
		return SortNewest
	}
	return SortOldest
}

// Toggle returns the opposite display mode.
func (d DisplayMode) Toggle() DisplayMode {
	if d == DisplayList {
		return DisplayGrid
	}
	return DisplayList
}
