package models

// ResourceType tags a bookable unit with its pricing family.
type ResourceType string

const (
	ResourcePS4       ResourceType = "ps4"
	ResourcePS5       ResourceType = "ps5"
	ResourceXbox      ResourceType = "xbox"
	ResourceSwitch    ResourceType = "switch"
	ResourceSimulador ResourceType = "simulador"
)

// Resource represents a single bookable physical unit (console, simulator seat).
type Resource struct {
	ID            string       `bson:"id" json:"id"`
	Type          ResourceType `bson:"type" json:"type"`
	Name          string       `bson:"name" json:"name"`
	PricePerHour  int64        `bson:"price_per_hour" json:"price_per_hour"`  // currency units per hour
	BufferMinutes int          `bson:"buffer_minutes" json:"buffer_minutes"`  // turnaround gap enforced around reservations
	Active        bool         `bson:"active" json:"active"`
	CreatedAt     int64        `bson:"created_at" json:"created_at"`
	UpdatedAt     int64        `bson:"updated_at" json:"updated_at"`
}

// Options carries per-reservation extras. The zero value means no extras.
// Only PS4 resources honour Joysticks today; keeping this a struct (rather
// than an open map) lets the pricing engine switch on it exhaustively.
type Options struct {
	Joysticks int `bson:"joysticks,omitempty" json:"joysticks,omitempty"`
}
