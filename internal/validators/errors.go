package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidItemID    = errors.New("invalid item id")
	ErrEmptyItem        = errors.New("item must have a title or a text")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrTextTooLong      = errors.New("text is too long")
	ErrInvalidColor     = errors.New("color is not in palette")
	ErrInvalidDeadline  = errors.New("deadline must be a date in YYYY-MM-DD format")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrInvalidLogin       = errors.New("login must be an e-mail address")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrDisplayNameTooLong = errors.New("display name is too long")
)
