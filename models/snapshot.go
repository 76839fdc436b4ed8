// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Snapshot is the full current collection of one user's items as delivered by
// the live collection feed. A snapshot always replaces the previous one.
type Snapshot struct {
	Items      []Item
	ReceivedAt time.Time

	// FromCache is set when the snapshot was restored from the local cache
	// because the server could not be reached.
	FromCache bool
}
