package service

import (
	"errors"
	"fmt"
)

// Outcome errors returned by the services.  Handlers match them with
// errors.Is and translate them into HTTP responses; the wrapped detail is
// for logs only.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidDate        = errors.New("invalid or past travel date")
	ErrFareNotFound       = errors.New("fare not found for route")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPersistence        = errors.New("persistence failure")
	ErrStoreUnavailable   = errors.New("store unavailable")
)

// ErrSameStation is an ErrInvalidInput for a route that starts and ends at
// the same station.
var ErrSameStation = fmt.Errorf("%w: from and to must be different", ErrInvalidInput)
