package services

import (
	"errors"
	"fmt"
)

// Error kinds. Every guard and lifecycle operation fails fast with the first
// applicable kind; handlers map each to a distinct HTTP status.
var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("not found")
	ErrInvalidTransition    = errors.New("operation not allowed in current application state")
	ErrDuplicateApplication = errors.New("an application for this scholarship already exists")
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidID            = errors.New("invalid id")
	ErrInvalidInput         = errors.New("invalid input")
	ErrPaymentIncomplete    = errors.New("payment has not been completed")
	ErrUpstream             = errors.New("upstream failure")
)

// upstream tags a store/provider failure so it surfaces as 502 with the
// cause preserved for diagnostics.
func upstream(err error) error {
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}

func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
