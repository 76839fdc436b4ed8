// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrServerUnavailable):
		return ErrServerUnavailable

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgEmptyItem:
			return validators.ErrEmptyItem
		case app.MsgInvalidColor:
			return validators.ErrInvalidColor
		case app.MsgInvalidDeadline:
			return validators.ErrInvalidDeadline
		case app.MsgTitleTooLong:
			return validators.ErrTitleTooLong
		case app.MsgTextTooLong:
			return validators.ErrTextTooLong
		case app.MsgNoFieldsToUpdate:
			return validators.ErrNoFieldsToUpdate
		case app.MsgInvalidLogin:
			return validators.ErrInvalidLogin
		case app.MsgPasswordTooShort:
			return validators.ErrPasswordTooShort
		case app.MsgDisplayNameTooLong:
			return validators.ErrDisplayNameTooLong
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidLoginPassword {
			return ErrWrongPassword
		}
		// any other 401 comes from the token check
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgUserNotFound {
			return store.ErrNoUserWasFound
		}
		return store.ErrItemNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			return store.ErrLoginAlreadyExists
		}

	case errors.Is(err, adapter.ErrBadGateway):
		switch msg {
		case app.MsgRegistrationFailed:
			return ErrRegisterOnServer
		case app.MsgLoginFailed:
			return ErrLoginOnServer
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
