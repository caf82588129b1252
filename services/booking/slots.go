package booking

import "time"

// DurationMenu lists the session lengths, in minutes, offered to customers.
var DurationMenu = []int{30, 45, 60, 90, 120}

// SlotGrid describes the bookable day: sessions may start every IntervalMin
// minutes from OpenHour and must finish by CloseHour.
type SlotGrid struct {
	OpenHour    int
	CloseHour   int
	IntervalMin int
}

// ValidDuration reports whether a session length is on the menu.
func ValidDuration(minutes int) bool {
	for _, d := range DurationMenu {
		if d == minutes {
			return true
		}
	}
	return false
}

// Starts returns every permissible session start for the given day and
// duration, in the day's location, ordered ascending. A start is permissible
// when the whole session fits before closing time.
func (g SlotGrid) Starts(day time.Time, durationMin int) []time.Time {
	open := time.Date(day.Year(), day.Month(), day.Day(), g.OpenHour, 0, 0, 0, day.Location())
	closing := time.Date(day.Year(), day.Month(), day.Day(), g.CloseHour, 0, 0, 0, day.Location())
	step := time.Duration(g.IntervalMin) * time.Minute
	duration := time.Duration(durationMin) * time.Minute

	var starts []time.Time
	for t := open; !t.Add(duration).After(closing); t = t.Add(step) {
		starts = append(starts, t)
	}
	return starts
}

// Contains reports whether the given start/duration pair lies on the grid
// for its own day.
func (g SlotGrid) Contains(start time.Time, durationMin int) bool {
	for _, s := range g.Starts(start, durationMin) {
		if s.Equal(start) {
			return true
		}
	}
	return false
}
