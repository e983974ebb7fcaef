package booking

import (
	"context"
	"fmt"

	appointmentRepo "pawbook/database/repository/appointment"
	"pawbook/models"
)

// AvailabilityProvider returns the atomic time slots for one day. The slots
// are read-only for the lifetime of one query; the engine only filters and
// merges them.
type AvailabilityProvider interface {
	FetchAvailableSlots(ctx context.Context, date, serviceID, serviceType, employeeID string) ([]models.AtomicTimeSlot, error)
}

// availabilityKey fingerprints the determining inputs of an availability
// query. A response is applied only while the session still carries the same
// key; anything else is a stale response for superseded inputs.
func availabilityKey(d models.BookingDraft) string {
	return fmt.Sprintf("%s|%s|%s|%s", d.ScheduledDate, d.ServiceID, d.ServiceType, d.EmployeeID)
}

// WorkingHoursAvailability instantiates atomic slots from the configured
// business hours and marks every slot that overlaps an active appointment as
// unavailable. When an employee is given, only that employee's appointments
// block; otherwise any appointment does.
type WorkingHoursAvailability struct {
	Appointments appointmentRepo.Repository
	OpenHour     int
	CloseHour    int
	SlotMinutes  int
}

func (p *WorkingHoursAvailability) FetchAvailableSlots(ctx context.Context, date, serviceID, serviceType, employeeID string) ([]models.AtomicTimeSlot, error) {
	appointments, err := p.Appointments.ListForDay(ctx, date, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for %s: %w", date, err)
	}

	open := p.OpenHour * 60
	close := p.CloseHour * 60

	var slots []models.AtomicTimeSlot
	for start := open; start+p.SlotMinutes <= close; start += p.SlotMinutes {
		end := start + p.SlotMinutes
		slots = append(slots, models.AtomicTimeSlot{
			Start:       start,
			End:         end,
			IsAvailable: !overlapsAny(start, end, appointments),
		})
	}
	return slots, nil
}

// overlapsAny uses strict inequalities so back-to-back bookings do not block
// each other.
func overlapsAny(start, end int, appointments []models.Appointment) bool {
	for _, a := range appointments {
		if a.Status == models.AppointmentCancelled {
			continue
		}
		if a.Start < end && a.End > start {
			return true
		}
	}
	return false
}
