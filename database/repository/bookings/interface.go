package bookingsRepo

import (
	"context"
	"time"

	"dojovcp/models"
)

// ReservationRepository is the store boundary of the booking engine. The
// conflict-sensitive operations (CreateIfFree, CreateForEvent) must provide
// at-most-one-winner semantics under concurrent callers; everything else is
// plain document access.
type ReservationRepository interface {
	// QueryWindow returns reservations for the resource whose occupied
	// interval intersects [windowStart, windowEnd), ordered by start
	// ascending. Intersection rather than start containment, so a
	// reservation that began before the window but runs into it is still
	// returned. It is a best-effort snapshot used to bound transactional
	// re-validation.
	QueryWindow(ctx context.Context, resourceID string, windowStart, windowEnd time.Time) ([]models.Reservation, error)

	// CreateIfFree atomically re-validates the reservation's range against
	// the current store state and inserts it with status pending. Every
	// candidate from the pre-fetch window is re-read fresh inside the
	// transaction; a buffered conflict aborts with ErrOverlap.
	CreateIfFree(ctx context.Context, res *models.Reservation, buffer time.Duration) error

	// CreateForEvent atomically counts the event's non-cancelled bookings,
	// compares against capacity and inserts the reservation, failing with
	// ErrEventFull when the event is at or over capacity.
	CreateForEvent(ctx context.Context, res *models.Reservation, capacity int) error

	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	GetByCode(ctx context.Context, code string) (*models.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]models.Reservation, error)

	// ListForResourceDay returns the resource's reservations whose start
	// falls on the given calendar day, for availability display.
	ListForResourceDay(ctx context.Context, resourceID string, day time.Time) ([]models.Reservation, error)

	// CountActiveForEvent counts reservations for the event whose status is
	// in the active set (pending, paid, checked_in).
	CountActiveForEvent(ctx context.Context, eventID string) (int, error)

	// UpdateStatus moves a reservation from one of the allowed source
	// statuses to the target status in a single atomic update, refreshing
	// UpdatedAt and applying extra field updates (e.g. payment_ref).
	// Returns ErrNotFound or ErrBadTransition accordingly.
	UpdateStatus(ctx context.Context, id string, allowedFrom []models.ReservationStatus, to models.ReservationStatus, extra map[string]interface{}) (*models.Reservation, error)
}
