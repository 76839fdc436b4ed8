// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-note-keeper/models"
)

// CardStyle selects how an item card is highlighted.
type CardStyle int

const (
	CardNormal CardStyle = iota
	CardDueToday
	CardOverdue
	CardPinned
	CardCompleted
)

// StyleOf picks the card highlight. Precedence:
// completed, pinned, then deadline urgency.
func StyleOf(item models.Item, today time.Time) CardStyle {
	switch {
	case item.Completed:
		return CardCompleted
	case item.IsPinned:
		return CardPinned
	}

	switch ClassifyUrgency(item, today) {
	case UrgencyOverdue:
		return CardOverdue
	case UrgencyDueToday:
		return CardDueToday
	default:
		return CardNormal
	}
}

// FormatDeadline renders a deadline as dd/mm/yyyy.
// It returns an empty string for an absent or malformed deadline.
func FormatDeadline(item models.Item) string {
	d, ok := item.DeadlineDate()
	if !ok {
		return ""
	}
	return d.Format("02/01/2006")
}

// DisplayName is the user's display name, else the local part of the login,
// else "User".
func DisplayName(u models.User) string {
	if name := strings.TrimSpace(u.DisplayName); name != "" {
		return name
	}
	if local, _, _ := strings.Cut(u.Login, "@"); local != "" {
		return local
	}
	return "User"
}

// AvatarChar is the upper-cased first letter of the login,
// else of the display name, else 'U'.
func AvatarChar(u models.User) string {
	for _, s := range []string{u.Login, u.DisplayName} {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(s)
		return string(unicode.ToUpper(r))
	}
	return "U"
}
