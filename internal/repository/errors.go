// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// services to distinguish between a missing row and a failing store.
package repository

import "errors"

// ErrFareNotFound is returned when no fares row exists for an ordered
// station pair.
var ErrFareNotFound = errors.New("fare not found")

// ErrBookingNotFound is returned when a booking cannot be read back by id.
var ErrBookingNotFound = errors.New("booking not found")

// ErrEmailExists is returned when the users.email unique key rejects an
// insert.
var ErrEmailExists = errors.New("email already exists")
