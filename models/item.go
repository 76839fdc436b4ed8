// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DeadlineLayout is the wire and storage layout of Item.Deadline.
// Deadlines carry no time component.
const DeadlineLayout = time.DateOnly

// Item is a single note or task owned by exactly one user.
//
// Optional text fields are plain strings: an absent value is the empty string.
// CreatedAt is assigned by the server and may be nil on a freshly created item
// that has not made the round-trip yet.
type Item struct {
	// ID is assigned by the persistence layer on create and never reassigned.
	ID string `json:"id"`

	// UserID is the owner of the item. It never leaves the server.
	UserID int64 `json:"-"`

	Title     string `json:"title,omitempty"`
	Text      string `json:"text,omitempty"`
	Completed bool   `json:"completed"`
	IsPinned  bool   `json:"is_pinned"`

	// Color is one of the fixed palette entries.
	Color string `json:"color"`

	// Deadline is an ISO date (YYYY-MM-DD) or empty when the item has no deadline.
	Deadline string `json:"deadline,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// HasDeadline reports whether the item carries a deadline.
func (i Item) HasDeadline() bool {
	return i.Deadline != ""
}

// DeadlineDate parses Deadline. ok is false when the deadline is absent or malformed.
func (i Item) DeadlineDate() (date time.Time, ok bool) {
	if i.Deadline == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DeadlineLayout, i.Deadline)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// NewItem is the set of fields a client supplies when creating an item.
// Color may be empty, in which case the server picks a random palette entry.
type NewItem struct {
	Title    string `json:"title,omitempty"`
	Text     string `json:"text,omitempty"`
	Color    string `json:"color,omitempty"`
	Deadline string `json:"deadline,omitempty"`
	IsPinned bool   `json:"is_pinned,omitempty"`
}

// ItemUpdate is a partial update of a single item.
// Only non-nil fields are applied. A non-nil empty Deadline clears the deadline.
type ItemUpdate struct {
	ID     string `json:"-"`
	UserID int64  `json:"-"`

	Title     *string `json:"title,omitempty"`
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
	IsPinned  *bool   `json:"is_pinned,omitempty"`
	Color     *string `json:"color,omitempty"`
	Deadline  *string `json:"deadline,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (u ItemUpdate) IsEmpty() bool {
	return u.Title == nil && u.Text == nil && u.Completed == nil &&
		u.IsPinned == nil && u.Color == nil && u.Deadline == nil
}

// Ptr returns a pointer to v. Handy for building an ItemUpdate inline.
func Ptr[T any](v T) *T {
	return &v
}
