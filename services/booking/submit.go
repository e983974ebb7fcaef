package booking

import (
	"context"
	"fmt"
	"time"

	"pawbook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit finalizes the booking from the REVIEW step. The appointment is
// created exactly once per session (retries reuse the recorded identifier)
// and creation always completes before the payment collaborator is invoked.
// A failed payment clears only the submitting flag; the draft survives for a
// retry.
func (s *DefaultWizardService) Submit(ctx context.Context, sessionID string) (*models.SubmitResult, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CurrentStep != models.StepReview {
		return nil, ErrNotOnReview
	}
	if session.IsSubmitting {
		return nil, ErrSubmitInFlight
	}

	session.IsSubmitting = true
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	fail := func(cause error) (*models.SubmitResult, error) {
		session.IsSubmitting = false
		if saveErr := s.Store.Save(ctx, session); saveErr != nil {
			s.Logger.Error("failed to clear submitting flag", zap.Error(saveErr))
		}
		return nil, cause
	}

	if session.AppointmentID == "" {
		appt, err := s.buildAppointment(ctx, session)
		if err != nil {
			return fail(err)
		}
		if err := s.Appointments.Create(ctx, appt); err != nil {
			return fail(fmt.Errorf("failed to create appointment: %w", err))
		}

		// Persist the identifier before any payment call so a retry can never
		// create a duplicate.
		session.AppointmentID = appt.ID
		if err := s.Store.Save(ctx, session); err != nil {
			return fail(err)
		}

		if s.Reminders != nil {
			if err := s.Reminders.ScheduleReminder(ctx, *appt); err != nil {
				s.Logger.Warn("failed to schedule reminder", zap.String("appointment", appt.ID), zap.Error(err))
			}
		}
	}

	appt, err := s.Appointments.GetByID(ctx, session.AppointmentID)
	if err != nil {
		return fail(fmt.Errorf("failed to load created appointment: %w", err))
	}

	switch session.Draft.PaymentMethod {
	case models.PaymentCard:
		redirectURL, err := s.Payments.InitiateCardCheckout(ctx, *appt)
		if err != nil {
			return fail(fmt.Errorf("failed to initiate card checkout: %w", err))
		}
		s.finish(ctx, sessionID)
		return &models.SubmitResult{
			AppointmentID: appt.ID,
			RedirectURL:   redirectURL,
			PaymentStatus: "pending",
		}, nil

	case models.PaymentCash, models.PaymentBankTransfer:
		invoice, err := s.Payments.ConfirmDirectPayment(ctx, *appt, session.Draft.PaymentMethod)
		if err != nil {
			return fail(fmt.Errorf("failed to confirm payment: %w", err))
		}
		if err := s.Appointments.SetPaymentOutcome(ctx, appt.ID, string(session.Draft.PaymentMethod), invoice.Status); err != nil {
			s.Logger.Warn("failed to record payment outcome", zap.String("appointment", appt.ID), zap.Error(err))
		}
		s.finish(ctx, sessionID)
		return &models.SubmitResult{
			AppointmentID: appt.ID,
			PaymentStatus: invoice.Status,
		}, nil

	default:
		return fail(newValidationError("paymentMethod", "no payment method selected"))
	}
}

// finish discards the session after a successful submission.
func (s *DefaultWizardService) finish(ctx context.Context, sessionID string) {
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to discard completed session", zap.String("session", sessionID), zap.Error(err))
	}
}

func (s *DefaultWizardService) buildAppointment(ctx context.Context, session *models.WizardSession) (*models.Appointment, error) {
	draft := session.Draft
	if draft.TimeSlot.IsZero() || draft.ScheduledDate == "" || draft.PetID == "" {
		return nil, newValidationError("draft", "booking draft is incomplete")
	}

	pet, err := s.Pets.GetByID(ctx, draft.PetID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pet: %w", err)
	}

	return &models.Appointment{
		ID:          uuid.New().String(),
		UserID:      session.UserID,
		PetID:       pet.ID,
		PetName:     pet.Name,
		EmployeeID:  draft.EmployeeID,
		ServiceID:   draft.ServiceID,
		ServiceType: draft.ServiceType,
		Date:        draft.ScheduledDate,
		Start:       draft.TimeSlot.Start,
		End:         draft.TimeSlot.End,
		Notes:       draft.Notes,
		Status:      models.AppointmentConfirmed,
		CreatedAt:   time.Now(),
	}, nil
}
