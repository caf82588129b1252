package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"dojovcp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmationRoundTrip(t *testing.T) {
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
	require.NotNil(t, res.QRPayload)

	data, err := json.Marshal(res.QRPayload)
	require.NoError(t, err)

	decoded, err := DecodeConfirmation(data)
	require.NoError(t, err)
	assert.Equal(t, res.QRPayload, decoded)
	assert.Equal(t, 1, decoded.Version)
	assert.Equal(t, res.Code, decoded.Code)
	assert.Equal(t, 2, decoded.Options.Joysticks)

	slotStart, err := time.Parse(time.RFC3339, decoded.SlotStart)
	require.NoError(t, err)
	assert.True(t, slotStart.Equal(res.Start))

	// The decoded code must find the reservation that produced it.
	byCode, err := env.svc.CheckIn(context.Background(), decoded.Code)
	require.NoError(t, err)
	assert.Equal(t, res.ID, byCode.ID)
}

func TestDecodeConfirmationRejectsGarbage(t *testing.T) {
	_, err := DecodeConfirmation([]byte("not json"))
	require.Error(t, err)

	_, err = DecodeConfirmation([]byte(`{"v":1}`))
	require.Error(t, err, "payload without code is unusable")
}

func TestConfirmationPNG(t *testing.T) {
	env := newTestEnv(t)
	env.seedResource(t, "ps4-1", models.ResourcePS4, 0)
	res := env.reserve(t, "ps4-1", "u1", 15)

	png, err := env.svc.ConfirmationPNG(context.Background(), res.ID, 256)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
