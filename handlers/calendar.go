package handlers

import (
	"net/http"
	"time"

	"pawbook/config"
	appointmentRepo "pawbook/database/repository/appointment"
	"pawbook/models"
	"pawbook/services/calendar"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler serves the staff day/week calendar: the time grid, shading
// classification and positioned appointments.
type CalendarHandler struct {
	Appointments appointmentRepo.Repository
	Grid         calendar.GridConfig
	WorkDays     map[time.Weekday]bool
	Hours        calendar.WorkingHours
	Logger       *zap.Logger
}

func NewCalendarHandler(appointments appointmentRepo.Repository, grid calendar.GridConfig, workDays map[time.Weekday]bool, hours calendar.WorkingHours, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		Appointments: appointments,
		Grid:         grid,
		WorkDays:     workDays,
		Hours:        hours,
		Logger:       logger,
	}
}

type calendarDay struct {
	Date         string                           `json:"date"`
	IsWorkDay    bool                             `json:"isWorkDay"`
	Appointments []calendar.PositionedAppointment `json:"appointments"`
}

type calendarRow struct {
	calendar.GridCell
	WithinWorkingHours bool `json:"withinWorkingHours"`
}

// GetLayout renders the calendar window anchored on ?date with ?view=day|week.
// An optional ?employeeId scopes the appointment list to one staff member.
func (h *CalendarHandler) GetLayout(c *gin.Context) {
	loc := config.Location()

	anchor := time.Now().In(loc)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		anchor = parsed
	}

	view := calendar.ViewWeek
	if c.Query("view") == string(calendar.ViewDay) {
		view = calendar.ViewDay
	}

	state := calendar.NewViewState(anchor, h.WorkDays, h.Hours)
	state.SetView(view)
	start, end := state.Range()

	appointments, err := h.Appointments.ListRange(c.Request.Context(),
		start.Format("2006-01-02"), end.Format("2006-01-02"), c.Query("employeeId"))
	if err != nil {
		h.Logger.Error("failed to load calendar appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load appointments"})
		return
	}

	calendarAppointments := make([]models.CalendarAppointment, 0, len(appointments))
	for _, a := range appointments {
		calendarAppointments = append(calendarAppointments, a.ToCalendar(loc))
	}

	rows := make([]calendarRow, 0)
	for _, cell := range calendar.BuildTimeGrid(h.Grid) {
		rows = append(rows, calendarRow{
			GridCell:           cell,
			WithinWorkingHours: calendar.WithinWorkingHours(cell.Hour, cell.Minute, h.Hours),
		})
	}

	days := make([]calendarDay, 0)
	for _, day := range state.VisibleDays() {
		days = append(days, calendarDay{
			Date:         day.Format("2006-01-02"),
			IsWorkDay:    calendar.IsWorkDay(day, h.WorkDays),
			Appointments: calendar.PositionAppointments(calendarAppointments, day, h.Grid),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"anchor": anchor.Format("2006-01-02"),
		"view":   view,
		"grid":   rows,
		"days":   days,
	})
}
