// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

// ErrUserQuit is returned when the user leaves the login flow.
var ErrUserQuit = errors.New("user quit the program")

// inputErrors are shown to the user with their own text.
var inputErrors = []error{
	validators.ErrInvalidLogin,
	validators.ErrPasswordTooShort,
	validators.ErrDisplayNameTooLong,
	validators.ErrEmptyItem,
	validators.ErrInvalidColor,
	validators.ErrInvalidDeadline,
	validators.ErrTitleTooLong,
	validators.ErrTextTooLong,
	validators.ErrNoFieldsToUpdate,
}

// humanizeError turns client service errors into short messages for the
// status line.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrServerUnavailable):
		return "Server is unavailable, showing the last known state"
	case errors.Is(err, service.ErrWrongPassword):
		return "Invalid login or password"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid), errors.Is(err, service.ErrNotAuthenticated):
		return "Session expired, please log in again"
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return "This e-mail is already registered"
	case errors.Is(err, store.ErrItemNotFound):
		return "The item no longer exists"
	}

	for _, target := range inputErrors {
		if errors.Is(err, target) {
			msg := target.Error()
			return strings.ToUpper(msg[:1]) + msg[1:]
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
