// Package bookingsRepo stores and re-validates reservations. The sentinel
// values below let the service layer distinguish a lost race (ErrOverlap,
// ErrEventFull) from a missing document or an illegal lifecycle jump
// without parsing error strings.
package bookingsRepo

import "errors"

// ErrOverlap is returned by CreateIfFree when the requested range conflicts,
// after buffer expansion, with a reservation observed inside the transaction.
var ErrOverlap = errors.New("overlap")

// ErrEventFull is returned by CreateForEvent when the event's capacity is
// exhausted at transaction time.
var ErrEventFull = errors.New("event full")

// ErrNotFound is returned when a reservation does not exist.
var ErrNotFound = errors.New("reservation not found")

// ErrBadTransition is returned by UpdateStatus when the reservation exists
// but its current status is not one of the allowed source states.
var ErrBadTransition = errors.New("illegal status transition")
