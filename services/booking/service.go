// Package booking implements the lounge reservation engine: slot generation,
// availability, pricing, conflict-checked reservation and the reservation
// lifecycle.
package booking

import (
	"context"
	"time"

	"dojovcp/config"
	bookingsRepo "dojovcp/database/repository/bookings"
	catalogRepo "dojovcp/database/repository/catalog"
	"dojovcp/models"
)

// BookingService defines high-level booking operations.
type BookingService interface {
	Availability(ctx context.Context, resourceID string, day time.Time, durationMin int) (*DayAvailability, error)
	Quote(ctx context.Context, resourceID string, ranges []models.TimeRange, opts models.Options) (*PriceQuote, error)
	Reserve(ctx context.Context, req ReserveRequest) (*models.Reservation, error)
	ReserveEvent(ctx context.Context, req EventReserveRequest) (*models.Reservation, error)
	ConfirmPaid(ctx context.Context, id, paymentRef string) (*models.Reservation, error)
	CheckIn(ctx context.Context, code string) (*models.Reservation, error)
	Cancel(ctx context.Context, id string) (*models.Reservation, error)
	Get(ctx context.Context, id string) (*models.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]models.Reservation, error)
	ConfirmationPNG(ctx context.Context, id string, size int) ([]byte, error)
}

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	reservations bookingsRepo.ReservationRepository
	catalog      catalogRepo.CatalogRepository

	grid               SlotGrid
	enforceNow         bool
	allowUnpaidCheckIn bool
	alias              string

	now func() time.Time
}

// NewBookingService constructs the service from AppConfig policy knobs.
func NewBookingService(reservations bookingsRepo.ReservationRepository, catalog catalogRepo.CatalogRepository) *DefaultBookingService {
	cfg := config.AppConfig
	return &DefaultBookingService{
		reservations: reservations,
		catalog:      catalog,
		grid: SlotGrid{
			OpenHour:    cfg.OpenHour,
			CloseHour:   cfg.CloseHour,
			IntervalMin: cfg.SlotIntervalMin,
		},
		enforceNow:         cfg.EnforceNow,
		allowUnpaidCheckIn: cfg.AllowUnpaidCheckIn,
		alias:              cfg.LoungeAlias,
		now:                time.Now,
	}
}

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr("get reservation", "reservation", id, err)
	}
	return res, nil
}

func (s *DefaultBookingService) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	list, err := s.reservations.ListByUser(ctx, userID)
	if err != nil {
		return nil, mapRepoErr("list reservations", "user", userID, err)
	}
	return list, nil
}

// bufferFor resolves the buffer around reservations of a resource.
func bufferFor(res *models.Resource) time.Duration {
	minutes := res.BufferMinutes
	if minutes <= 0 {
		minutes = config.AppConfig.BufferMinutes
	}
	return time.Duration(minutes) * time.Minute
}
