package booking

import (
	"context"
	"testing"

	"dojovcp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) reserve(t *testing.T, resourceID, userID string, hour int) *models.Reservation {
	t.Helper()
	res, err := e.svc.Reserve(context.Background(), ReserveRequest{
		ResourceID:  resourceID,
		UserID:      userID,
		Start:       at(testDay, hour, 0),
		DurationMin: 60,
	})
	require.NoError(t, err)
	return res
}

func TestLifecycleHappyPath(t *testing.T) {
	env := newTestEnv(t)
	env.seedResource(t, "ps4-1", models.ResourcePS4, 0)
	res := env.reserve(t, "ps4-1", "u1", 15)

	paid, err := env.svc.ConfirmPaid(context.Background(), res.ID, "mp-123")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, paid.Status)
	assert.Equal(t, "mp-123", paid.PaymentRef)

	arrived, err := env.svc.CheckIn(context.Background(), res.Code)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedIn, arrived.Status)
}

func TestLifecycleIllegalTransitions(t *testing.T) {
	env := newTestEnv(t)
	env.seedResource(t, "ps4-1", models.ResourcePS4, 0)

	t.Run("cancel after check-in", func(t *testing.T) {
		res := env.reserve(t, "ps4-1", "u1", 15)
		_, err := env.svc.CheckIn(context.Background(), res.Code)
		require.NoError(t, err)

		_, err = env.svc.Cancel(context.Background(), res.ID)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("pay twice", func(t *testing.T) {
		res := env.reserve(t, "ps4-1", "u1", 17)
		_, err := env.svc.ConfirmPaid(context.Background(), res.ID, "mp-1")
		require.NoError(t, err)
		_, err = env.svc.ConfirmPaid(context.Background(), res.ID, "mp-2")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("check in cancelled", func(t *testing.T) {
		res := env.reserve(t, "ps4-1", "u1", 19)
		_, err := env.svc.Cancel(context.Background(), res.ID)
		require.NoError(t, err)
		_, err = env.svc.CheckIn(context.Background(), res.Code)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := env.svc.Cancel(context.Background(), "nope")
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
	})
}

func TestCheckInUnpaidPolicy(t *testing.T) {
	env := newTestEnv(t)
	env.seedResource(t, "ps4-1", models.ResourcePS4, 0)

	res := env.reserve(t, "ps4-1", "u1", 15)
	arrived, err := env.svc.CheckIn(context.Background(), res.Code)
	require.NoError(t, err, "pending check-in allowed by default")
	assert.Equal(t, models.StatusCheckedIn, arrived.Status)

	env.svc.allowUnpaidCheckIn = false
	strict := env.reserve(t, "ps4-1", "u2", 17)
	_, err = env.svc.CheckIn(context.Background(), strict.Code)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve, "pending check-in rejected under strict policy")

	_, err = env.svc.ConfirmPaid(context.Background(), strict.ID, "mp-9")
	require.NoError(t, err)
	_, err = env.svc.CheckIn(context.Background(), strict.Code)
	require.NoError(t, err)
}

func TestCancelFreesSlot(t *testing.T) {
	env := newTestEnv(t)
	env.seedResource(t, "ps4-1", models.ResourcePS4, 0)

	res := env.reserve(t, "ps4-1", "u1", 15)
	_, err := env.svc.Cancel(context.Background(), res.ID)
	require.NoError(t, err)

	rebooked := env.reserve(t, "ps4-1", "u2", 15)
	assert.NotEqual(t, res.ID, rebooked.ID)
	assert.Equal(t, res.Start, rebooked.Start)
}

func TestCancelPaidFreesSlot(t *testing.T) {
	env := newTestEnv(t)
	env.seedResource(t, "ps4-1", models.ResourcePS4, 0)

	res := env.reserve(t, "ps4-1", "u1", 15)
	_, err := env.svc.ConfirmPaid(context.Background(), res.ID, "mp-44")
	require.NoError(t, err)
	_, err = env.svc.Cancel(context.Background(), res.ID)
	require.NoError(t, err)

	rebooked := env.reserve(t, "ps4-1", "u2", 15)
	assert.NotEqual(t, res.ID, rebooked.ID)
	assert.Equal(t, res.Start, rebooked.Start)
	assert.Equal(t, models.StatusPending, rebooked.Status)
}
