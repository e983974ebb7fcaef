package booking

import (
	"context"

	petRepo "pawbook/database/repository/pet"
	"pawbook/models"

	"go.uber.org/zap"
)

// WizardService drives one booking attempt from pet selection to payment.
// All mutators load the session, apply a transition and persist the result;
// the draft and the submission flag are never touched by anyone else.
type WizardService interface {
	Start(ctx context.Context, userID, serviceID, serviceType string) (*models.WizardSession, error)
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)

	SetPet(ctx context.Context, sessionID, petID string) (*models.WizardSession, *CompatibilityResult, error)
	SetEmployee(ctx context.Context, sessionID, employeeID string) (*models.WizardSession, error)
	SetDate(ctx context.Context, sessionID, date string) (*models.WizardSession, error)
	SetTimeSlot(ctx context.Context, sessionID string, indices []int) (*models.WizardSession, error)
	SetNotes(ctx context.Context, sessionID, notes string) (*models.WizardSession, error)
	SetPaymentMethod(ctx context.Context, sessionID string, method models.PaymentMethod) (*models.WizardSession, error)

	CanAdvance(ctx context.Context, sessionID string) (bool, error)
	Advance(ctx context.Context, sessionID string) (*models.WizardSession, error)
	// Retreat moves one step back; the second return is true when the wizard
	// was at PET and the retreat exits the flow entirely.
	Retreat(ctx context.Context, sessionID string) (*models.WizardSession, bool, error)

	FetchAvailability(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Submit(ctx context.Context, sessionID string) (*models.SubmitResult, error)
	Cancel(ctx context.Context, sessionID string) error
}

// ReminderScheduler queues a reminder ahead of an appointment's start.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, appt models.Appointment) error
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	Store        SessionStore
	Pets         petRepo.Repository
	Appointments AppointmentCreator
	Availability AvailabilityProvider
	Payments     PaymentProcessor
	Reminders    ReminderScheduler
	Logger       *zap.Logger
}

// AppointmentCreator is the slice of the appointment repository the wizard
// needs for submission.
type AppointmentCreator interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	SetPaymentOutcome(ctx context.Context, id, method, status string) error
}
