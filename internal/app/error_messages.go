// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the message strings the server writes into error
// responses. The client maps them back to service errors, so both sides
// must use these constants.
package app

const (
	MsgInvalidDataProvided     = "invalid data provided"
	MsgInvalidLoginPassword    = "invalid login/password"
	MsgInternalServerError     = "internal server error"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
	MsgNoUserIDProvided        = "no user ID provided"

	MsgRegistrationFailed = "registration failed"
	MsgLoginFailed        = "login failed"
	MsgLoginAlreadyExists = "login already exists"
	MsgUserNotFound       = "user not found"

	MsgItemNotFound     = "item not found"
	MsgInvalidItemID    = "item id must be a UUID"
	MsgEmptyItem        = "item must have a title or a text"
	MsgInvalidColor     = "color is not in palette"
	MsgInvalidDeadline  = "deadline must be a date in YYYY-MM-DD format"
	MsgTitleTooLong     = "title is too long"
	MsgTextTooLong      = "text is too long"
	MsgNoFieldsToUpdate = "no fields to update"

	MsgItemAlreadyExists = "item already exists"

	// MsgInvalidHash is returned when the HashSHA256 header does not match the body.
	MsgInvalidHash = "invalid body signature"
)

const (
	MsgInvalidLogin       = "login must be an e-mail address"
	MsgPasswordTooShort   = "password is too short"
	MsgDisplayNameTooLong = "display name is too long"
)
