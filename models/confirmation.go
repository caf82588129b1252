package models

// ConfirmationPayload is the document encoded into a reservation's QR code.
// Decoding the QR and looking up Code in storage must return the same
// reservation that produced it.
type ConfirmationPayload struct {
	Version    int     `bson:"v" json:"v"`
	Code       string  `bson:"code" json:"code"`
	ResourceID string  `bson:"resourceId,omitempty" json:"resourceId,omitempty"`
	EventID    string  `bson:"eventId,omitempty" json:"eventId,omitempty"`
	SlotStart  string  `bson:"slotStart" json:"slotStart"` // RFC 3339
	CreatedAt  string  `bson:"createdAt" json:"createdAt"` // RFC 3339
	Alias      string  `bson:"alias" json:"alias"`
	Options    Options `bson:"meta,omitempty" json:"meta,omitempty"`
}
