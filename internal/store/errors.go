package store

import "errors"

// Sentinel errors returned by repositories. Match them with [errors.Is].
var (
	ErrLoginAlreadyExists = errors.New("login already exists")
	ErrNoUserWasFound     = errors.New("no user was found")
	ErrItemNotFound       = errors.New("item was not found")
	ErrItemAlreadyExists  = errors.New("item already exists")
	ErrEmptyUpdate        = errors.New("update has no fields")
	ErrSessionNotFound    = errors.New("local session not found")
)

// Low-level database operation errors. Driver errors are wrapped with these.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrPreparingStatement   = errors.New("failed to prepare statement")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
