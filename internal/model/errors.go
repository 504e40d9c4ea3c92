package model

import "errors"

// Validation failures returned by the registry, the engine and the reports.
// Callers match them with errors.Is; returned errors wrap them with context.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicateAccount = errors.New("duplicate account")
	ErrMissingAccount   = errors.New("missing account")
	ErrSameAccount      = errors.New("debit and credit accounts are the same")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrInvalidDate      = errors.New("invalid date")
)
