package booking

import (
	"context"
	"time"

	"dojovcp/models"
	"dojovcp/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventReserveRequest is a request to claim one seat at an event.
type EventReserveRequest struct {
	EventID string `json:"event_id"`
	UserID  string `json:"user_id"`
}

// ReserveEvent claims one seat at a capacity-based event. The event document
// is read up front; the capacity count itself happens inside the store
// transaction, so concurrent claims on the last seat resolve to one winner.
func (s *DefaultBookingService) ReserveEvent(ctx context.Context, req EventReserveRequest) (*models.Reservation, error) {
	logger := utils.GetLogger().With(zap.String("event", req.EventID), zap.String("user", req.UserID))

	if req.UserID == "" {
		return nil, &ValidationError{Field: "user_id", Message: "user is required"}
	}
	event, err := s.catalog.GetEvent(ctx, req.EventID)
	if err != nil {
		return nil, mapRepoErr("get event", "event", req.EventID, err)
	}
	if !event.Active {
		return nil, &ValidationError{Field: "event", Message: "event is not active"}
	}
	if s.enforceNow && event.Date.Before(s.now()) {
		return nil, &ValidationError{Field: "event", Message: "event has already started"}
	}

	now := s.now()
	res := &models.Reservation{
		ID:        uuid.New().String(),
		Code:      utils.GenerateCode(),
		EventID:   req.EventID,
		UserID:    req.UserID,
		Start:     event.Date,
		End:       event.Date.Add(2 * time.Hour),
		Status:    models.StatusPending,
		Amount:    event.Price,
		Alias:     s.alias,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res.QRPayload = buildConfirmation(res, s.alias)

	if err := s.reservations.CreateForEvent(ctx, res, event.Capacity); err != nil {
		mapped := mapRepoErr("create event booking", "event", req.EventID, err)
		if conflict, ok := mapped.(*ConflictError); ok {
			logger.Info("event booking rejected", zap.String("code", conflict.Code))
		} else {
			logger.Error("event booking failed", zap.Error(err))
		}
		return nil, mapped
	}

	logger.Info("event booking created", zap.String("reservation", res.ID))
	return res, nil
}
