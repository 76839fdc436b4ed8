package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongPassword           = errors.New("wrong password")
	ErrPasswordHashing         = errors.New("password hashing failed")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrValidationNoUserID      = errors.New("no user ID was given")
)

// Client-side errors.
var (
	ErrRegisterOnServer  = errors.New("registration on server failed")
	ErrLoginOnServer     = errors.New("login on server failed")
	ErrServerUnavailable = errors.New("server is unavailable")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrNoItemID          = errors.New("no item id given")
)
