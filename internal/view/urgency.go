// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Urgency is the presentation-only status derived from a deadline.
type Urgency string

const (
	UrgencyNormal   Urgency = "normal"
	UrgencyDueToday Urgency = "due-today"
	UrgencyOverdue  Urgency = "overdue"
)

// ClassifyUrgency compares the item's deadline with today, truncated to
// midnight in today's location.
//
//	deadline absent or malformed  -> normal
//	item completed                -> normal
//	deadline < today              -> overdue
//	deadline == today             -> due-today
//	deadline > today              -> normal
func ClassifyUrgency(item models.Item, today time.Time) Urgency {
	deadline, ok := item.DeadlineDate()
	if !ok || item.Completed {
		return UrgencyNormal
	}

	day := midnight(today)
	d := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, day.Location())

	switch {
	case d.Before(day):
		return UrgencyOverdue
	case d.Equal(day):
		return UrgencyDueToday
	default:
		return UrgencyNormal
	}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
