package booking

import (
	"errors"
	"fmt"

	bookingsRepo "dojovcp/database/repository/bookings"
	catalogRepo "dojovcp/database/repository/catalog"
)

// Conflict codes carried to clients so a UI can distinguish a lost race on a
// time slot from a sold-out event.
const (
	CodeOverlap   = "OVERLAP"
	CodeEventFull = "EVENT_FULL"
)

// ConflictError signals that a reservation lost the race for its slot or
// seat. Conflicts are expected outcomes, not failures; callers retry with a
// different slot.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ValidationError signals a request that can never succeed as given.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NotFoundError signals a missing reservation, resource or event.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// StoreError wraps infrastructure failures so handlers can map them to 500s
// without inspecting driver errors.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// mapRepoErr translates repository sentinels into the service taxonomy.
func mapRepoErr(op, kind, id string, err error) error {
	switch {
	case errors.Is(err, bookingsRepo.ErrOverlap):
		return &ConflictError{Code: CodeOverlap, Message: "requested range conflicts with an existing reservation"}
	case errors.Is(err, bookingsRepo.ErrEventFull):
		return &ConflictError{Code: CodeEventFull, Message: "event is at capacity"}
	case errors.Is(err, bookingsRepo.ErrNotFound), errors.Is(err, catalogRepo.ErrNotFound):
		return &NotFoundError{Kind: kind, ID: id}
	case errors.Is(err, bookingsRepo.ErrBadTransition):
		return &ValidationError{Field: "status", Message: "reservation is not in a state that allows this transition"}
	default:
		return &StoreError{Op: op, Err: err}
	}
}
