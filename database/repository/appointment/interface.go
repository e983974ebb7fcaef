package appointment

import (
	"context"

	"pawbook/models"
)

// Repository defines persistence operations for appointments.
type Repository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// ListForDay returns appointments on one date, optionally scoped to an
	// employee, sorted by start minute.
	ListForDay(ctx context.Context, date, employeeID string) ([]models.Appointment, error)
	// ListRange returns appointments between two dates inclusive.
	ListRange(ctx context.Context, from, to, employeeID string) ([]models.Appointment, error)
	SetPaymentOutcome(ctx context.Context, id, method, status string) error
	UpdateStatus(ctx context.Context, id, status string) error
}
