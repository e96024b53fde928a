package service

import (
	"errors"
	"fmt"
)

// Failure taxonomy shared by all services. Handlers map each kind to a
// single HTTP status; errors.Is against these sentinels is the contract.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidState       = errors.New("invalid state")
)

// taggedError carries a human-readable message while unwrapping to a
// taxonomy sentinel, so the message reads clean in a response body and
// errors.Is still classifies it.
type taggedError struct {
	kind error
	msg  string
}

func (e *taggedError) Error() string { return e.msg }
func (e *taggedError) Unwrap() error { return e.kind }

func errf(kind error, format string, args ...any) error {
	return &taggedError{kind: kind, msg: fmt.Sprintf(format, args...)}
}
