package booking

import (
	"context"
	"time"

	"dojovcp/models"
)

// SlotAvailability is one offered session start and whether it can be booked.
type SlotAvailability struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Free  bool      `json:"free"`
}

// HourBucket aggregates the slots starting within one clock hour, for the
// hour-strip display.
type HourBucket struct {
	Hour  int `json:"hour"`
	Total int `json:"total"`
	Free  int `json:"free"`
}

// DayAvailability is the full availability view of one resource for one day
// at a chosen session length.
type DayAvailability struct {
	ResourceID  string             `json:"resource_id"`
	Day         string             `json:"day"` // YYYY-MM-DD
	DurationMin int                `json:"duration_min"`
	Slots       []SlotAvailability `json:"slots"`
	Hours       []HourBucket       `json:"hours"`
}

// Availability computes the bookable slots of a resource for a day. A slot is
// free when no active reservation conflicts with it after buffer expansion,
// and, when start-time enforcement is on, its start has not already passed.
func (s *DefaultBookingService) Availability(ctx context.Context, resourceID string, day time.Time, durationMin int) (*DayAvailability, error) {
	if !ValidDuration(durationMin) {
		return nil, &ValidationError{Field: "duration", Message: "duration is not offered"}
	}
	resource, err := s.catalog.GetResource(ctx, resourceID)
	if err != nil {
		return nil, mapRepoErr("get resource", "resource", resourceID, err)
	}
	if !resource.Active {
		return nil, &ValidationError{Field: "resource", Message: "resource is not active"}
	}

	existing, err := s.reservations.ListForResourceDay(ctx, resourceID, day)
	if err != nil {
		return nil, mapRepoErr("list reservations", "resource", resourceID, err)
	}
	var occupied []models.TimeRange
	for _, r := range existing {
		if r.Status.IsActive() {
			occupied = append(occupied, r.Range())
		}
	}

	buffer := bufferFor(resource)
	duration := time.Duration(durationMin) * time.Minute
	now := s.now()

	out := &DayAvailability{
		ResourceID:  resourceID,
		Day:         day.Format("2006-01-02"),
		DurationMin: durationMin,
	}
	buckets := make(map[int]*HourBucket)
	for _, start := range s.grid.Starts(day, durationMin) {
		slot := models.TimeRange{Start: start, End: start.Add(duration)}
		free := true
		if s.enforceNow && start.Before(now) {
			free = false
		}
		if free {
			for _, occ := range occupied {
				if models.Overlaps(slot, occ, buffer) {
					free = false
					break
				}
			}
		}
		out.Slots = append(out.Slots, SlotAvailability{Start: slot.Start, End: slot.End, Free: free})

		b, ok := buckets[start.Hour()]
		if !ok {
			b = &HourBucket{Hour: start.Hour()}
			buckets[start.Hour()] = b
		}
		b.Total++
		if free {
			b.Free++
		}
	}
	for h := s.grid.OpenHour; h < s.grid.CloseHour; h++ {
		if b, ok := buckets[h]; ok {
			out.Hours = append(out.Hours, *b)
		}
	}
	return out, nil
}
