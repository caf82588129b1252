package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dojovcp/models"

	qrcode "github.com/skip2/go-qrcode"
)

// ConfirmationVersion is the current QR payload schema version.
const ConfirmationVersion = 1

// buildConfirmation assembles the QR payload for a freshly created
// reservation. Times are RFC 3339 so any scanner can parse them.
func buildConfirmation(res *models.Reservation, alias string) *models.ConfirmationPayload {
	return &models.ConfirmationPayload{
		Version:    ConfirmationVersion,
		Code:       res.Code,
		ResourceID: res.ResourceID,
		EventID:    res.EventID,
		SlotStart:  res.Start.Format(time.RFC3339),
		CreatedAt:  res.CreatedAt.Format(time.RFC3339),
		Alias:      alias,
		Options:    res.Options,
	}
}

// EncodeConfirmationPNG renders the payload as a QR code PNG of the given
// pixel size.
func EncodeConfirmationPNG(payload *models.ConfirmationPayload, size int) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal confirmation payload: %w", err)
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode confirmation qr: %w", err)
	}
	return png, nil
}

// DecodeConfirmation parses a scanned payload back into its structured form.
func DecodeConfirmation(data []byte) (*models.ConfirmationPayload, error) {
	var payload models.ConfirmationPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode confirmation payload: %w", err)
	}
	if payload.Code == "" {
		return nil, fmt.Errorf("confirmation payload has no code")
	}
	return &payload, nil
}

// ConfirmationPNG renders the stored QR payload of a reservation.
func (s *DefaultBookingService) ConfirmationPNG(ctx context.Context, id string, size int) ([]byte, error) {
	res, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	payload := res.QRPayload
	if payload == nil {
		payload = buildConfirmation(res, s.alias)
	}
	return EncodeConfirmationPNG(payload, size)
}
