package booking

import (
	"context"

	"dojovcp/models"
	"dojovcp/utils"

	"go.uber.org/zap"
)

// Lifecycle: pending -> paid -> checked_in, with cancellation allowed from
// pending and paid. checked_in and cancelled are terminal. Each transition is
// a single conditional update in the store, so two staff members clicking at
// once cannot double-apply one.

// ConfirmPaid records payment against a pending reservation.
func (s *DefaultBookingService) ConfirmPaid(ctx context.Context, id, paymentRef string) (*models.Reservation, error) {
	extra := map[string]interface{}{}
	if paymentRef != "" {
		extra["payment_ref"] = paymentRef
	}
	res, err := s.reservations.UpdateStatus(ctx, id,
		[]models.ReservationStatus{models.StatusPending},
		models.StatusPaid, extra)
	if err != nil {
		return nil, mapRepoErr("confirm payment", "reservation", id, err)
	}
	utils.GetLogger().Info("reservation paid", zap.String("reservation", id), zap.String("payment_ref", paymentRef))
	return res, nil
}

// CheckIn marks the customer as arrived. The key is the scanned confirmation
// code, with a fallback to the reservation id for manual front-desk entry.
// Whether an unpaid (pending) reservation may check in is a policy knob.
func (s *DefaultBookingService) CheckIn(ctx context.Context, code string) (*models.Reservation, error) {
	res, err := s.reservations.GetByCode(ctx, code)
	if err != nil {
		res, err = s.reservations.GetByID(ctx, code)
	}
	if err != nil {
		return nil, mapRepoErr("find by code", "reservation", code, err)
	}

	allowedFrom := []models.ReservationStatus{models.StatusPaid}
	if s.allowUnpaidCheckIn {
		allowedFrom = append(allowedFrom, models.StatusPending)
	}
	updated, err := s.reservations.UpdateStatus(ctx, res.ID, allowedFrom, models.StatusCheckedIn, nil)
	if err != nil {
		return nil, mapRepoErr("check in", "reservation", res.ID, err)
	}
	utils.GetLogger().Info("reservation checked in", zap.String("reservation", res.ID), zap.String("code", code))
	return updated, nil
}

// Cancel releases a reservation. The record stays in the store; the status
// change alone is what frees the slot for rebooking.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) (*models.Reservation, error) {
	res, err := s.reservations.UpdateStatus(ctx, id,
		[]models.ReservationStatus{models.StatusPending, models.StatusPaid},
		models.StatusCancelled, nil)
	if err != nil {
		return nil, mapRepoErr("cancel", "reservation", id, err)
	}
	utils.GetLogger().Info("reservation cancelled", zap.String("reservation", id))
	return res, nil
}
