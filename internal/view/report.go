// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Progress counts completed items.
func Progress(items []models.Item) (done, total int) {
	for _, item := range items {
		if item.Completed {
			done++
		}
	}
	return done, len(items)
}

// Report renders a plain-text status line per item, in the given order:
//
//	[DONE] buy milk
//	[TODO] call mom
//
// The item text is used, falling back to the title.
func Report(items []models.Item) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		if item.Completed {
			b.WriteString("[DONE] ")
		} else {
			b.WriteString("[TODO] ")
		}
		b.WriteString(label(item))
	}
	return b.String()
}

func label(item models.Item) string {
	text := strings.TrimSpace(item.Text)
	if text == "" {
		return strings.TrimSpace(item.Title)
	}
	return text
}
