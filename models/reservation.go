package models

import "time"

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusPaid      ReservationStatus = "paid"
	StatusCheckedIn ReservationStatus = "checked_in"
	StatusCancelled ReservationStatus = "cancelled"
)

// ActiveStatuses are the statuses that occupy a resource (or consume event
// capacity). Cancelled reservations free their slot.
var ActiveStatuses = []ReservationStatus{StatusPending, StatusPaid, StatusCheckedIn}

// IsActive reports whether a status counts against availability.
func (s ReservationStatus) IsActive() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCheckedIn:
		return true
	}
	return false
}

// TimeRange is a half-open interval [Start, End) with End > Start.
type TimeRange struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// Duration returns the range length.
func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Reservation represents a stored booking record. Reservations are never
// deleted; cancellation is a status transition.
type Reservation struct {
	ID         string            `bson:"id" json:"id"`
	Code       string            `bson:"code" json:"code"` // human-presentable confirmation token
	ResourceID string            `bson:"resource_id,omitempty" json:"resource_id,omitempty"`
	EventID    string            `bson:"event_id,omitempty" json:"event_id,omitempty"`
	UserID     string            `bson:"user_id" json:"user_id"`
	Start      time.Time         `bson:"start" json:"start"`
	End        time.Time         `bson:"end" json:"end"`
	Status     ReservationStatus `bson:"status" json:"status"`
	Amount     int64             `bson:"amount" json:"amount"`
	Alias      string            `bson:"alias,omitempty" json:"alias,omitempty"`
	Options    Options           `bson:"options,omitempty" json:"options,omitempty"`
	PaymentRef string            `bson:"payment_ref,omitempty" json:"payment_ref,omitempty"`
	QRPayload  *ConfirmationPayload `bson:"qr_payload,omitempty" json:"qr_payload,omitempty"`
	CreatedAt  time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time         `bson:"updated_at" json:"updated_at"`
}

// Range returns the occupied interval of the reservation.
func (b *Reservation) Range() TimeRange {
	return TimeRange{Start: b.Start, End: b.End}
}
