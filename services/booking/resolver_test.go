package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"dojovcp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserveHappyPath(t *testing.T) {
	env := newTestEnv(t)
	env.seedResource(t, "ps4-1", models.ResourcePS4, 0)

	res, err := env.svc.Reserve(context.Background(), ReserveRequest{
		ResourceID:  "ps4-1",
		UserID:      "u1",
		Start:       at(testDay, 15, 0),
		DurationMin: 60,
		Options:     models.Options{Joysticks: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, res.Status)
	assert.Equal(t, int64(6000), res.Amount)
	assert.Equal(t, at(testDay, 16, 0), res.End)
	assert.Len(t, res.Code, 10)
	require.NotNil(t, res.QRPayload)
	assert.Equal(t, res.Code, res.QRPayload.Code)
	assert.Equal(t, "dojovcp", res.QRPayload.Alias)

	stored, err := env.svc.Get(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Code, stored.Code)
}

func TestReserveValidation(t *testing.T) {
	env := newTestEnv(t)
	env.seedResource(t, "ps4-1", models.ResourcePS4, 0)

	tests := []struct {
		name string
		req  ReserveRequest
	}{
		{"no user", ReserveRequest{ResourceID: "ps4-1", Start: at(testDay, 15, 0), DurationMin: 60}},
		{"off-menu duration", ReserveRequest{ResourceID: "ps4-1", UserID: "u1", Start: at(testDay, 15, 0), DurationMin: 75}},
		{"off-grid start", ReserveRequest{ResourceID: "ps4-1", UserID: "u1", Start: at(testDay, 15, 10), DurationMin: 60}},
		{"past closing", ReserveRequest{ResourceID: "ps4-1", UserID: "u1", Start: at(testDay, 22, 30), DurationMin: 60}},
		{"in the past", ReserveRequest{ResourceID: "ps4-1", UserID: "u1", Start: at(testDay.AddDate(0, 0, -7), 15, 0), DurationMin: 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.Reserve(context.Background(), tt.req)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}

	_, err := env.svc.Reserve(context.Background(), ReserveRequest{
		ResourceID: "missing", UserID: "u1", Start: at(testDay, 15, 0), DurationMin: 60,
	})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestReserveConflict(t *testing.T) {
	env := newTestEnv(t)
	env.seedResource(t, "ps4-1", models.ResourcePS4, 0)

	first, err := env.svc.Reserve(context.Background(), ReserveRequest{
		ResourceID: "ps4-1", UserID: "u1", Start: at(testDay, 15, 0), DurationMin: 60,
	})
	require.NoError(t, err)

	// Same slot, overlapping slot, and a slot whose tail crosses in.
	for _, start := range []time.Time{at(testDay, 15, 0), at(testDay, 15, 30), at(testDay, 14, 30)} {
		_, err := env.svc.Reserve(context.Background(), ReserveRequest{
			ResourceID: "ps4-1", UserID: "u2", Start: start, DurationMin: 60,
		})
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict, "start %s", start.Format("15:04"))
		assert.Equal(t, CodeOverlap, conflict.Code)
	}

	// Adjacent slot still books.
	second, err := env.svc.Reserve(context.Background(), ReserveRequest{
		ResourceID: "ps4-1", UserID: "u2", Start: at(testDay, 16, 0), DurationMin: 60,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestReserveConflictWithEarlierLongSession(t *testing.T) {
	env := newTestEnv(t)
	env.seedResource(t, "ps4-1", models.ResourcePS4, 0)

	// A two-hour session whose start lies well before the slots tried below.
	_, err := env.svc.Reserve(context.Background(), ReserveRequest{
		ResourceID: "ps4-1", UserID: "u1", Start: at(testDay, 15, 0), DurationMin: 120,
	})
	require.NoError(t, err)

	// Both slots begin after the session's start but inside its range; the
	// conflict check must see the earlier reservation.
	for _, start := range []time.Time{at(testDay, 16, 0), at(testDay, 16, 30)} {
		_, err := env.svc.Reserve(context.Background(), ReserveRequest{
			ResourceID: "ps4-1", UserID: "u2", Start: start, DurationMin: 60,
		})
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict, "start %s", start.Format("15:04"))
		assert.Equal(t, CodeOverlap, conflict.Code)
	}

	// First slot clear of the session books fine.
	_, err = env.svc.Reserve(context.Background(), ReserveRequest{
		ResourceID: "ps4-1", UserID: "u2", Start: at(testDay, 17, 0), DurationMin: 60,
	})
	require.NoError(t, err)
}

func TestReserveOtherResourceUnaffected(t *testing.T) {
	env := newTestEnv(t)
	env.seedResource(t, "ps4-1", models.ResourcePS4, 0)
	env.seedResource(t, "ps4-2", models.ResourcePS4, 0)

	_, err := env.svc.Reserve(context.Background(), ReserveRequest{
		ResourceID: "ps4-1", UserID: "u1", Start: at(testDay, 15, 0), DurationMin: 60,
	})
	require.NoError(t, err)

	_, err = env.svc.Reserve(context.Background(), ReserveRequest{
		ResourceID: "ps4-2", UserID: "u2", Start: at(testDay, 15, 0), DurationMin: 60,
	})
	require.NoError(t, err)
}

func TestReserveConcurrentSingleWinner(t *testing.T) {
	env := newTestEnv(t)
	env.seedResource(t, "ps5-1", models.ResourcePS5, 0)

	const contenders = 32
	var wg sync.WaitGroup
	errs := make([]error, contenders)

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.svc.Reserve(context.Background(), ReserveRequest{
				ResourceID:  "ps5-1",
				UserID:      "user",
				Start:       at(testDay, 18, 0),
				DurationMin: 60,
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, CodeOverlap, conflict.Code)
	}
	assert.Equal(t, 1, winners, "exactly one contender may win the slot")

	stored, err := env.bookRep.QueryWindow(context.Background(), "ps5-1", at(testDay, 0, 0), at(testDay, 23, 59))
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
