package booking

import (
	"context"
	"errors"
	"testing"

	"pawbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAppointmentRepository serves canned appointments to the availability
// provider; the write operations are unused there.
type fakeAppointmentRepository struct {
	appointments []models.Appointment
}

func (f *fakeAppointmentRepository) Create(ctx context.Context, appt *models.Appointment) error {
	return nil
}

func (f *fakeAppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, errors.New("appointment not found")
}

func (f *fakeAppointmentRepository) ListForDay(ctx context.Context, date, employeeID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.Date != date {
			continue
		}
		if employeeID != "" && a.EmployeeID != employeeID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAppointmentRepository) ListRange(ctx context.Context, from, to, employeeID string) ([]models.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeAppointmentRepository) SetPaymentOutcome(ctx context.Context, id, method, status string) error {
	return nil
}

func (f *fakeAppointmentRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return nil
}

func TestWorkingHoursAvailability(t *testing.T) {
	repo := &fakeAppointmentRepository{appointments: []models.Appointment{
		{ID: "a1", Date: "2026-09-03", EmployeeID: "emp-1", Start: 540, End: 600, Status: models.AppointmentConfirmed},
		{ID: "a2", Date: "2026-09-03", EmployeeID: "emp-1", Start: 480, End: 540, Status: models.AppointmentCancelled},
	}}
	provider := &WorkingHoursAvailability{
		Appointments: repo,
		OpenHour:     8,
		CloseHour:    11,
		SlotMinutes:  30,
	}

	slots, err := provider.FetchAvailableSlots(context.Background(), "2026-09-03", "FullGroom", "grooming", "emp-1")
	require.NoError(t, err)
	require.Len(t, slots, 6)

	// Cancelled appointments do not block, and back-to-back bookings leave the
	// adjacent slots free.
	assert.True(t, slots[0].IsAvailable)  // 08:00
	assert.True(t, slots[1].IsAvailable)  // 08:30
	assert.False(t, slots[2].IsAvailable) // 09:00 overlaps a1
	assert.False(t, slots[3].IsAvailable) // 09:30 overlaps a1
	assert.True(t, slots[4].IsAvailable)  // 10:00 starts exactly at a1's end
	assert.True(t, slots[5].IsAvailable)  // 10:30
}

func TestWorkingHoursAvailabilityScopedToEmployee(t *testing.T) {
	repo := &fakeAppointmentRepository{appointments: []models.Appointment{
		{ID: "a1", Date: "2026-09-03", EmployeeID: "emp-2", Start: 480, End: 540, Status: models.AppointmentConfirmed},
	}}
	provider := &WorkingHoursAvailability{
		Appointments: repo,
		OpenHour:     8,
		CloseHour:    9,
		SlotMinutes:  30,
	}

	// emp-2's booking does not block emp-1.
	slots, err := provider.FetchAvailableSlots(context.Background(), "2026-09-03", "FullGroom", "grooming", "emp-1")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.True(t, slots[0].IsAvailable)
	assert.True(t, slots[1].IsAvailable)

	// With no employee chosen, any active booking blocks.
	slots, err = provider.FetchAvailableSlots(context.Background(), "2026-09-03", "FullGroom", "grooming", "")
	require.NoError(t, err)
	assert.False(t, slots[0].IsAvailable)
	assert.False(t, slots[1].IsAvailable)
}

func TestAvailabilityKeyTracksDeterminingInputs(t *testing.T) {
	base := models.BookingDraft{
		ServiceID:     "FullGroom",
		ServiceType:   "grooming",
		EmployeeID:    "emp-1",
		ScheduledDate: "2026-09-03",
	}

	assert.Equal(t, availabilityKey(base), availabilityKey(base))

	date := base
	date.ScheduledDate = "2026-09-04"
	assert.NotEqual(t, availabilityKey(base), availabilityKey(date))

	employee := base
	employee.EmployeeID = "emp-2"
	assert.NotEqual(t, availabilityKey(base), availabilityKey(employee))

	// Notes are not a determining input; changing them must not supersede an
	// in-flight availability query.
	notes := base
	notes.Notes = "gentle with the ears"
	assert.Equal(t, availabilityKey(base), availabilityKey(notes))
}
