package models

import "time"

// Event represents a scheduled showing (cinema night, tournament). Events
// are capacity-based: bookings consume seats, not time ranges.
type Event struct {
	ID       string    `bson:"id" json:"id"`
	Title    string    `bson:"title" json:"title"`
	Date     time.Time `bson:"date" json:"date"`
	Room     string    `bson:"room" json:"room"`
	Price    int64     `bson:"price" json:"price"`
	Capacity int       `bson:"capacity" json:"capacity"` // max concurrent non-cancelled bookings
	Active   bool      `bson:"active" json:"active"`
}
