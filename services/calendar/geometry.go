package calendar

import (
	"sort"
	"time"

	"pawbook/models"
)

// PositionedAppointment is a calendar appointment with its derived geometry.
// The derived fields are recomputed on every render and never persisted.
type PositionedAppointment struct {
	models.CalendarAppointment
	TopOffset  float64 `json:"topOffset"`
	Height     float64 `json:"height"`
	StartLabel string  `json:"startLabel"`
	EndLabel   string  `json:"endLabel"`
}

// PositionAppointments projects the appointments falling on day onto the time
// grid. Appointments are matched to the day by the calendar date of their
// start, sorted ascending by start, and positioned independently: overlapping
// time ranges get overlapping geometry, with no lane assignment.
func PositionAppointments(appointments []models.CalendarAppointment, day time.Time, cfg GridConfig) []PositionedAppointment {
	dayStartMinutes := cfg.DayStartHour * 60

	var onDay []models.CalendarAppointment
	for _, a := range appointments {
		if sameDate(a.Start, day) {
			onDay = append(onDay, a)
		}
	}
	sort.Slice(onDay, func(i, j int) bool {
		return onDay[i].Start.Before(onDay[j].Start)
	})

	positioned := make([]PositionedAppointment, 0, len(onDay))
	for _, a := range onDay {
		startMinutes := a.Start.Hour()*60 + a.Start.Minute()
		durationMinutes := a.End.Sub(a.Start).Minutes()

		topOffset := float64(startMinutes-dayStartMinutes) / float64(cfg.IntervalMinutes) * cfg.CellHeight
		height := durationMinutes / float64(cfg.IntervalMinutes) * cfg.CellHeight
		// Floor at one cell so very short appointments stay visible.
		if height < cfg.CellHeight {
			height = cfg.CellHeight
		}

		positioned = append(positioned, PositionedAppointment{
			CalendarAppointment: a,
			TopOffset:           topOffset,
			Height:              height,
			StartLabel:          a.Start.Format("15:04"),
			EndLabel:            a.End.Format("15:04"),
		})
	}
	return positioned
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
