package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestVisibleDaysWeekStartsOnMonday(t *testing.T) {
	hours := WorkingHours{Start: 9 * 60, End: 17 * 60}

	// Wednesday anchor.
	v := NewViewState(date(2026, 9, 2), weekdaysOnly(), hours)
	days := v.VisibleDays()

	require.Len(t, days, 7)
	assert.Equal(t, date(2026, 8, 31), days[0]) // Monday
	assert.Equal(t, date(2026, 9, 6), days[6])  // Sunday

	// A Sunday anchor still belongs to the week that started the previous Monday.
	v.Anchor = date(2026, 9, 6)
	days = v.VisibleDays()
	assert.Equal(t, date(2026, 8, 31), days[0])

	// A Monday anchor is its own week start.
	v.Anchor = date(2026, 8, 31)
	days = v.VisibleDays()
	assert.Equal(t, date(2026, 8, 31), days[0])
}

func TestDayViewShowsAnchorOnly(t *testing.T) {
	v := NewViewState(date(2026, 9, 2), weekdaysOnly(), WorkingHours{})
	v.SetView(ViewDay)

	days := v.VisibleDays()
	require.Len(t, days, 1)
	assert.Equal(t, date(2026, 9, 2), days[0])
}

func TestNavigationStride(t *testing.T) {
	v := NewViewState(date(2026, 9, 2), weekdaysOnly(), WorkingHours{})

	v.GoNext()
	assert.Equal(t, date(2026, 9, 9), v.Anchor)
	v.GoPrevious()
	assert.Equal(t, date(2026, 9, 2), v.Anchor)

	v.SetView(ViewDay)
	v.GoNext()
	assert.Equal(t, date(2026, 9, 3), v.Anchor)
	v.GoPrevious()
	v.GoPrevious()
	assert.Equal(t, date(2026, 9, 1), v.Anchor)
}

func TestSetViewKeepsAnchor(t *testing.T) {
	anchor := date(2026, 9, 2)
	v := NewViewState(anchor, weekdaysOnly(), WorkingHours{})

	v.SetView(ViewDay)
	assert.Equal(t, anchor, v.Anchor)
	v.SetView(ViewWeek)
	assert.Equal(t, anchor, v.Anchor)
}

func TestGoToday(t *testing.T) {
	v := NewViewState(date(2026, 9, 2), weekdaysOnly(), WorkingHours{})
	v.GoNext()
	v.GoNext()

	now := date(2026, 9, 2)
	v.GoToday(now)
	assert.Equal(t, now, v.Anchor)
}

func TestRange(t *testing.T) {
	v := NewViewState(date(2026, 9, 2), weekdaysOnly(), WorkingHours{})

	start, end := v.Range()
	assert.Equal(t, date(2026, 8, 31), start)
	assert.Equal(t, date(2026, 9, 6), end)

	v.SetView(ViewDay)
	start, end = v.Range()
	assert.Equal(t, v.Anchor, start)
	assert.Equal(t, v.Anchor, end)
}

func TestRangeNotifierSkipsUnchangedRange(t *testing.T) {
	var notified int
	n := NewRangeNotifier(func(start, end time.Time) { notified++ })

	assert.True(t, n.Publish(date(2026, 8, 31), date(2026, 9, 6)))
	// Re-render with the same range: no second fetch.
	assert.False(t, n.Publish(date(2026, 8, 31), date(2026, 9, 6)))
	assert.Equal(t, 1, notified)

	// Navigation changes the range.
	assert.True(t, n.Publish(date(2026, 9, 7), date(2026, 9, 13)))
	assert.Equal(t, 2, notified)

	// Coming back to an earlier range notifies again; only consecutive
	// duplicates are collapsed.
	assert.True(t, n.Publish(date(2026, 8, 31), date(2026, 9, 6)))
	assert.Equal(t, 3, notified)
}
