package calendar

import (
	"testing"
	"time"

	"pawbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appt(id string, day time.Time, startHour, startMinute, durationMinutes int) models.CalendarAppointment {
	start := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMinute, 0, 0, day.Location())
	return models.CalendarAppointment{
		ID:    id,
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

func TestPositionFirstRowAlignment(t *testing.T) {
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	appointments := []models.CalendarAppointment{
		appt("a1", day, testGrid.DayStartHour, 0, testGrid.IntervalMinutes),
	}

	positioned := PositionAppointments(appointments, day, testGrid)

	require.Len(t, positioned, 1)
	assert.Equal(t, 0.0, positioned[0].TopOffset)
	assert.Equal(t, testGrid.CellHeight, positioned[0].Height)
}

func TestPositionOffsetAndHeight(t *testing.T) {
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	appointments := []models.CalendarAppointment{
		appt("a1", day, 9, 30, 90),
	}

	positioned := PositionAppointments(appointments, day, testGrid)

	require.Len(t, positioned, 1)
	// 09:30 is three half-hour rows below the 08:00 origin.
	assert.Equal(t, 3*testGrid.CellHeight, positioned[0].TopOffset)
	assert.Equal(t, 3*testGrid.CellHeight, positioned[0].Height)
	assert.Equal(t, "09:30", positioned[0].StartLabel)
	assert.Equal(t, "11:00", positioned[0].EndLabel)
}

func TestShortAppointmentGetsMinimumHeight(t *testing.T) {
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	appointments := []models.CalendarAppointment{
		appt("a1", day, 10, 0, 10),
	}

	positioned := PositionAppointments(appointments, day, testGrid)

	require.Len(t, positioned, 1)
	assert.Equal(t, testGrid.CellHeight, positioned[0].Height)
}

func TestPositionFiltersToDayAndSortsByStart(t *testing.T) {
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	otherDay := day.AddDate(0, 0, 1)
	appointments := []models.CalendarAppointment{
		appt("late", day, 15, 0, 60),
		appt("elsewhere", otherDay, 9, 0, 60),
		appt("early", day, 9, 0, 60),
	}

	positioned := PositionAppointments(appointments, day, testGrid)

	require.Len(t, positioned, 2)
	assert.Equal(t, "early", positioned[0].ID)
	assert.Equal(t, "late", positioned[1].ID)
}

func TestOverlappingAppointmentsKeepIndependentGeometry(t *testing.T) {
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	appointments := []models.CalendarAppointment{
		appt("a1", day, 9, 0, 60),
		appt("a2", day, 9, 30, 60),
	}

	positioned := PositionAppointments(appointments, day, testGrid)

	// Double bookings render on top of each other; nothing is hidden or moved
	// into lanes.
	require.Len(t, positioned, 2)
	assert.Equal(t, 2*testGrid.CellHeight, positioned[0].TopOffset)
	assert.Equal(t, 3*testGrid.CellHeight, positioned[1].TopOffset)
	assert.Less(t, positioned[1].TopOffset, positioned[0].TopOffset+positioned[0].Height)
}

func TestPositionEmptyDay(t *testing.T) {
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	positioned := PositionAppointments(nil, day, testGrid)
	assert.Empty(t, positioned)
}
