package apperrors

import "errors"

var (
	ErrNoProfile         = errors.New("no profile exists")
	ErrProfileExists     = errors.New("profile already exists")
	ErrInvalidName       = errors.New("character name is invalid")
	ErrInvalidCharacter  = errors.New("unknown starting character")
	ErrInvalidDuration   = errors.New("invalid session duration")
	ErrNoActiveSession   = errors.New("no active session")
	ErrSessionActive     = errors.New("session already active")
	ErrInsufficientFunds = errors.New("not enough dates")
	ErrNotOwned          = errors.New("item is not owned")
	ErrAlreadyOwned      = errors.New("item is already owned")
	ErrUnknownItem       = errors.New("unknown store item")
)
