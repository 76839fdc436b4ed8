package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

// errorResponse is the status and body written for a matched error.
type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched in order, so specific validation errors
// go before the generic ErrInvalidDataProvided that wraps them.
var errorResponses = []errorResponse{
	{validators.ErrInvalidItemID, http.StatusBadRequest, app.MsgInvalidItemID},
	{validators.ErrEmptyItem, http.StatusBadRequest, app.MsgEmptyItem},
	{validators.ErrInvalidColor, http.StatusBadRequest, app.MsgInvalidColor},
	{validators.ErrInvalidDeadline, http.StatusBadRequest, app.MsgInvalidDeadline},
	{validators.ErrTitleTooLong, http.StatusBadRequest, app.MsgTitleTooLong},
	{validators.ErrTextTooLong, http.StatusBadRequest, app.MsgTextTooLong},
	{validators.ErrNoFieldsToUpdate, http.StatusBadRequest, app.MsgNoFieldsToUpdate},
	{validators.ErrInvalidLogin, http.StatusBadRequest, app.MsgInvalidLogin},
	{validators.ErrPasswordTooShort, http.StatusBadRequest, app.MsgPasswordTooShort},
	{validators.ErrDisplayNameTooLong, http.StatusBadRequest, app.MsgDisplayNameTooLong},
	{store.ErrEmptyUpdate, http.StatusBadRequest, app.MsgNoFieldsToUpdate},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrValidationNoUserID, http.StatusBadRequest, app.MsgNoUserIDProvided},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrNoUserWasFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrItemNotFound, http.StatusNotFound, app.MsgItemNotFound},

	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
	{store.ErrItemAlreadyExists, http.StatusConflict, app.MsgItemAlreadyExists},
}

// responseFromError returns the status code and the public message for err.
// Unknown errors become 500 so internal details never reach the client.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with its mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, body := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Msg(msg)
	}

	http.Error(w, body, status)
}
