package calendar

import (
	"time"

	"pawbook/models"
)

// GridConfig describes the discrete time grid a day is rendered onto.
type GridConfig struct {
	DayStartHour    int
	DayEndHour      int
	IntervalMinutes int
	CellHeight      float64
}

// GridCell is one interval boundary of the time axis.
type GridCell struct {
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Label  string `json:"label"`
}

// WorkingHours bound the operationally active part of a day, in minutes from
// midnight. Used only for shading, never to hide rows.
type WorkingHours struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// BuildTimeGrid produces every interval boundary inside the configured hour
// window, in order. Computed once per render; deterministic.
func BuildTimeGrid(cfg GridConfig) []GridCell {
	var cells []GridCell
	for hour := cfg.DayStartHour; hour < cfg.DayEndHour; hour++ {
		for minute := 0; minute < 60; minute += cfg.IntervalMinutes {
			cells = append(cells, GridCell{
				Hour:   hour,
				Minute: minute,
				Label:  models.MinutesToClock(hour*60 + minute),
			})
		}
	}
	return cells
}

// IsWorkDay reports whether the day's weekday is configured as a work day.
// Non-work days are shaded, never hidden.
func IsWorkDay(day time.Time, workDays map[time.Weekday]bool) bool {
	return workDays[day.Weekday()]
}

// WithinWorkingHours reports whether a grid row falls inside [start, end).
func WithinWorkingHours(hour, minute int, hours WorkingHours) bool {
	minuteOfDay := hour*60 + minute
	return minuteOfDay >= hours.Start && minuteOfDay < hours.End
}
