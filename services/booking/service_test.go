package booking

import (
	"context"
	"testing"
	"time"

	bookingsRepo "dojovcp/database/repository/bookings"
	catalogRepo "dojovcp/database/repository/catalog"
	"dojovcp/models"

	"github.com/stretchr/testify/require"
)

// 2026-09-01 is a Tuesday; 2026-09-02 a Wednesday (promo day).
var (
	testDay      = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	testPromoDay = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	testNow      = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
)

type testEnv struct {
	svc     *DefaultBookingService
	bookRep *bookingsRepo.MemoryReservationRepo
	catalog *catalogRepo.MemoryCatalogRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	bookRep := bookingsRepo.NewMemoryReservationRepo()
	catalog := catalogRepo.NewMemoryCatalogRepo()
	svc := &DefaultBookingService{
		reservations:       bookRep,
		catalog:            catalog,
		grid:               SlotGrid{OpenHour: 14, CloseHour: 23, IntervalMin: 15},
		enforceNow:         true,
		allowUnpaidCheckIn: true,
		alias:              "dojovcp",
		now:                func() time.Time { return testNow },
	}
	return &testEnv{svc: svc, bookRep: bookRep, catalog: catalog}
}

func (e *testEnv) seedResource(t *testing.T, id string, typ models.ResourceType, bufferMin int) {
	t.Helper()
	err := e.catalog.CreateResource(context.Background(), &models.Resource{
		ID:            id,
		Type:          typ,
		Name:          id,
		BufferMinutes: bufferMin,
		Active:        true,
	})
	require.NoError(t, err)
}

func (e *testEnv) seedEvent(t *testing.T, id string, capacity int) {
	t.Helper()
	err := e.catalog.CreateEvent(context.Background(), &models.Event{
		ID:       id,
		Title:    "cinema night",
		Date:     testDay.Add(20 * time.Hour),
		Room:     "sala 1",
		Price:    3000,
		Capacity: capacity,
		Active:   true,
	})
	require.NoError(t, err)
}

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func TestGetUnknownReservation(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.Get(context.Background(), "nope")
	require.Error(t, err)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "reservation", nf.Kind)
}
