package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridStartsFitBeforeClosing(t *testing.T) {
	grid := SlotGrid{OpenHour: 14, CloseHour: 23, IntervalMin: 15}

	tests := []struct {
		name        string
		durationMin int
		wantFirst   string
		wantLast    string
		wantCount   int
	}{
		{"hour sessions", 60, "14:00", "22:00", 33},
		{"half hour sessions", 30, "14:00", "22:30", 35},
		{"two hour sessions", 120, "14:00", "21:00", 29},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			starts := grid.Starts(testDay, tt.durationMin)
			require.Len(t, starts, tt.wantCount)
			assert.Equal(t, tt.wantFirst, starts[0].Format("15:04"))
			assert.Equal(t, tt.wantLast, starts[len(starts)-1].Format("15:04"))
		})
	}
}

func TestGridEverySessionEndsByClose(t *testing.T) {
	grid := SlotGrid{OpenHour: 14, CloseHour: 23, IntervalMin: 15}
	closing := at(testDay, 23, 0)

	for _, d := range DurationMenu {
		for _, start := range grid.Starts(testDay, d) {
			end := start.Add(time.Duration(d) * time.Minute)
			assert.False(t, end.After(closing), "session %s+%dm runs past closing", start.Format("15:04"), d)
		}
	}
}

func TestGridDurationExceedingWindow(t *testing.T) {
	grid := SlotGrid{OpenHour: 14, CloseHour: 16, IntervalMin: 15}
	assert.Empty(t, grid.Starts(testDay, 180))
}

func TestGridContains(t *testing.T) {
	grid := SlotGrid{OpenHour: 14, CloseHour: 23, IntervalMin: 15}

	assert.True(t, grid.Contains(at(testDay, 14, 0), 60))
	assert.True(t, grid.Contains(at(testDay, 21, 0), 120))
	assert.False(t, grid.Contains(at(testDay, 13, 45), 60), "before opening")
	assert.False(t, grid.Contains(at(testDay, 22, 15), 60), "would run past closing")
	assert.False(t, grid.Contains(at(testDay, 14, 10), 60), "off the interval grid")
}

func TestValidDuration(t *testing.T) {
	for _, d := range DurationMenu {
		assert.True(t, ValidDuration(d))
	}
	assert.False(t, ValidDuration(15))
	assert.False(t, ValidDuration(75))
	assert.False(t, ValidDuration(0))
}
