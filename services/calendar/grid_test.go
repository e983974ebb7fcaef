package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGrid = GridConfig{
	DayStartHour:    8,
	DayEndHour:      18,
	IntervalMinutes: 30,
	CellHeight:      40,
}

func weekdaysOnly() map[time.Weekday]bool {
	return map[time.Weekday]bool{
		time.Monday:    true,
		time.Tuesday:   true,
		time.Wednesday: true,
		time.Thursday:  true,
		time.Friday:    true,
	}
}

func TestBuildTimeGrid(t *testing.T) {
	cells := BuildTimeGrid(testGrid)

	// 10 hours at two rows per hour.
	require.Len(t, cells, 20)
	assert.Equal(t, GridCell{Hour: 8, Minute: 0, Label: "08:00"}, cells[0])
	assert.Equal(t, GridCell{Hour: 8, Minute: 30, Label: "08:30"}, cells[1])
	assert.Equal(t, GridCell{Hour: 17, Minute: 30, Label: "17:30"}, cells[19])
}

func TestBuildTimeGridHourlyInterval(t *testing.T) {
	cells := BuildTimeGrid(GridConfig{DayStartHour: 9, DayEndHour: 12, IntervalMinutes: 60, CellHeight: 40})

	require.Len(t, cells, 3)
	assert.Equal(t, "09:00", cells[0].Label)
	assert.Equal(t, "11:00", cells[2].Label)
}

func TestIsWorkDay(t *testing.T) {
	workDays := weekdaysOnly()

	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsWorkDay(monday, workDays))
	assert.False(t, IsWorkDay(saturday, workDays))
	assert.False(t, IsWorkDay(sunday, workDays))
}

func TestWithinWorkingHours(t *testing.T) {
	hours := WorkingHours{Start: 9 * 60, End: 17 * 60}

	assert.False(t, WithinWorkingHours(8, 30, hours))
	assert.True(t, WithinWorkingHours(9, 0, hours))
	assert.True(t, WithinWorkingHours(16, 30, hours))
	// The end boundary is exclusive.
	assert.False(t, WithinWorkingHours(17, 0, hours))
}
