package booking

import (
	"context"
	"time"

	"dojovcp/models"
	"dojovcp/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReserveRequest is a request to book one session on a station.
type ReserveRequest struct {
	ResourceID  string         `json:"resource_id"`
	UserID      string         `json:"user_id"`
	Start       time.Time      `json:"start"`
	DurationMin int            `json:"duration_min"`
	Options     models.Options `json:"options"`
}

// Reserve books a session. The request is validated and priced, then handed
// to the store, which alone decides the winner under contention. On conflict
// the returned error carries CodeOverlap and nothing is written.
func (s *DefaultBookingService) Reserve(ctx context.Context, req ReserveRequest) (*models.Reservation, error) {
	logger := utils.GetLogger().With(zap.String("resource", req.ResourceID), zap.String("user", req.UserID))

	if req.UserID == "" {
		return nil, &ValidationError{Field: "user_id", Message: "user is required"}
	}
	if !ValidDuration(req.DurationMin) {
		return nil, &ValidationError{Field: "duration_min", Message: "duration is not offered"}
	}
	if !s.grid.Contains(req.Start, req.DurationMin) {
		return nil, &ValidationError{Field: "start", Message: "start is not on the slot grid"}
	}
	if s.enforceNow && req.Start.Before(s.now()) {
		return nil, &ValidationError{Field: "start", Message: "slot start has already passed"}
	}

	resource, err := s.catalog.GetResource(ctx, req.ResourceID)
	if err != nil {
		return nil, mapRepoErr("get resource", "resource", req.ResourceID, err)
	}
	if !resource.Active {
		return nil, &ValidationError{Field: "resource", Message: "resource is not active"}
	}

	slot := models.TimeRange{
		Start: req.Start,
		End:   req.Start.Add(time.Duration(req.DurationMin) * time.Minute),
	}
	quote := QuoteRanges(HourlyRate(resource, req.Options), []models.TimeRange{slot})

	now := s.now()
	res := &models.Reservation{
		ID:         uuid.New().String(),
		Code:       utils.GenerateCode(),
		ResourceID: req.ResourceID,
		UserID:     req.UserID,
		Start:      slot.Start,
		End:        slot.End,
		Status:     models.StatusPending,
		Amount:     quote.Total,
		Alias:      s.alias,
		Options:    req.Options,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	res.QRPayload = buildConfirmation(res, s.alias)

	if err := s.reservations.CreateIfFree(ctx, res, bufferFor(resource)); err != nil {
		mapped := mapRepoErr("create reservation", "resource", req.ResourceID, err)
		if conflict, ok := mapped.(*ConflictError); ok {
			logger.Info("reservation lost slot race", zap.String("code", conflict.Code), zap.Time("start", slot.Start))
		} else {
			logger.Error("reservation failed", zap.Error(err))
		}
		return nil, mapped
	}

	logger.Info("reservation created",
		zap.String("reservation", res.ID),
		zap.Time("start", res.Start),
		zap.Int64("amount", res.Amount))
	return res, nil
}
