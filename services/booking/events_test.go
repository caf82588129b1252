package booking

import (
	"context"
	"sync"
	"testing"

	"dojovcp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserveEventHappyPath(t *testing.T) {
	env := newTestEnv(t)
	env.seedEvent(t, "cinema-1", 10)

	res, err := env.svc.ReserveEvent(context.Background(), EventReserveRequest{
		EventID: "cinema-1", UserID: "u1",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, res.Status)
	assert.Equal(t, int64(3000), res.Amount)
	assert.Empty(t, res.ResourceID)
	require.NotNil(t, res.QRPayload)
	assert.Equal(t, "cinema-1", res.QRPayload.EventID)
}

func TestReserveEventCapacity(t *testing.T) {
	env := newTestEnv(t)
	env.seedEvent(t, "cinema-1", 2)

	first, err := env.svc.ReserveEvent(context.Background(), EventReserveRequest{EventID: "cinema-1", UserID: "u1"})
	require.NoError(t, err)
	_, err = env.svc.ReserveEvent(context.Background(), EventReserveRequest{EventID: "cinema-1", UserID: "u2"})
	require.NoError(t, err)

	_, err = env.svc.ReserveEvent(context.Background(), EventReserveRequest{EventID: "cinema-1", UserID: "u3"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, CodeEventFull, conflict.Code)

	// Cancelling frees the seat.
	_, err = env.svc.Cancel(context.Background(), first.ID)
	require.NoError(t, err)
	_, err = env.svc.ReserveEvent(context.Background(), EventReserveRequest{EventID: "cinema-1", UserID: "u3"})
	require.NoError(t, err)
}

func TestReserveEventConcurrentLastSeat(t *testing.T) {
	env := newTestEnv(t)
	env.seedEvent(t, "cinema-1", 1)

	const contenders = 16
	var wg sync.WaitGroup
	errs := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.svc.ReserveEvent(context.Background(), EventReserveRequest{
				EventID: "cinema-1", UserID: "user",
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
		assert.Equal(t, CodeEventFull, conflict.Code)
	}
	assert.Equal(t, 1, winners)

	count, err := env.bookRep.CountActiveForEvent(context.Background(), "cinema-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestReserveEventValidation(t *testing.T) {
	env := newTestEnv(t)
	env.seedEvent(t, "cinema-1", 5)

	_, err := env.svc.ReserveEvent(context.Background(), EventReserveRequest{EventID: "cinema-1"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = env.svc.ReserveEvent(context.Background(), EventReserveRequest{EventID: "missing", UserID: "u1"})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}
