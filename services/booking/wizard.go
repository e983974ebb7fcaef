package booking

import (
	"context"
	"fmt"

	"pawbook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Start creates a fresh wizard session for one (serviceID, serviceType) pair.
// The draft begins empty at the PET step.
func (s *DefaultWizardService) Start(ctx context.Context, userID, serviceID, serviceType string) (*models.WizardSession, error) {
	if _, err := GetServiceByID(serviceID); err != nil {
		return nil, err
	}

	session := &models.WizardSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Draft: models.BookingDraft{
			ServiceID:   serviceID,
			ServiceType: serviceType,
		},
		CurrentStep: models.StepPet,
	}
	session.AvailabilityKey = availabilityKey(session.Draft)

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultWizardService) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// SetPet records the pet and immediately re-runs the compatibility check.
// A pet change does not reset downstream fields.
func (s *DefaultWizardService) SetPet(ctx context.Context, sessionID, petID string) (*models.WizardSession, *CompatibilityResult, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	pet, err := s.Pets.GetByID(ctx, petID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch pet: %w", err)
	}
	if pet.OwnerID != session.UserID {
		return nil, nil, newValidationError("petId", "pet does not belong to this user")
	}

	details, err := GetServiceByID(session.Draft.ServiceID)
	if err != nil {
		return nil, nil, err
	}

	applySetPet(session, petID)
	result := CheckCompatibility(*pet, details.Rules)

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, &result, nil
}

func (s *DefaultWizardService) SetEmployee(ctx context.Context, sessionID, employeeID string) (*models.WizardSession, error) {
	return s.mutate(ctx, sessionID, func(session *models.WizardSession) error {
		applySetEmployee(session, employeeID)
		return nil
	})
}

func (s *DefaultWizardService) SetDate(ctx context.Context, sessionID, date string) (*models.WizardSession, error) {
	return s.mutate(ctx, sessionID, func(session *models.WizardSession) error {
		applySetDate(session, date)
		return nil
	})
}

// SetTimeSlot merges the selected atomic slot indices into the draft's time
// slot. Requires availability to have been fetched for the current inputs.
func (s *DefaultWizardService) SetTimeSlot(ctx context.Context, sessionID string, indices []int) (*models.WizardSession, error) {
	return s.mutate(ctx, sessionID, func(session *models.WizardSession) error {
		if len(session.AtomicSlots) == 0 {
			return newValidationError("timeSlot", "no availability loaded for the selected date")
		}
		slot, err := SelectSlotRange(session.AtomicSlots, indices)
		if err != nil {
			return err
		}
		applySetTimeSlot(session, slot)
		return nil
	})
}

func (s *DefaultWizardService) SetNotes(ctx context.Context, sessionID, notes string) (*models.WizardSession, error) {
	return s.mutate(ctx, sessionID, func(session *models.WizardSession) error {
		applySetNotes(session, notes)
		return nil
	})
}

func (s *DefaultWizardService) SetPaymentMethod(ctx context.Context, sessionID string, method models.PaymentMethod) (*models.WizardSession, error) {
	return s.mutate(ctx, sessionID, func(session *models.WizardSession) error {
		switch method {
		case models.PaymentCard, models.PaymentCash, models.PaymentBankTransfer:
		default:
			return newValidationError("paymentMethod", fmt.Sprintf("unsupported payment method: %s", method))
		}
		applySetPaymentMethod(session, method)
		return nil
	})
}

// CanAdvance reports whether the current step's gate passes.
func (s *DefaultWizardService) CanAdvance(ctx context.Context, sessionID string) (bool, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return false, err
	}
	stepCtx, err := s.stepContext(ctx, session)
	if err != nil {
		return false, err
	}
	return ValidateStep(session.CurrentStep, session.Draft, stepCtx), nil
}

// Advance moves to the next step, but only when the current gate passes.
// It never skips and is a no-op past REVIEW.
func (s *DefaultWizardService) Advance(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	stepCtx, err := s.stepContext(ctx, session)
	if err != nil {
		return nil, err
	}
	if !ValidateStep(session.CurrentStep, session.Draft, stepCtx) {
		return nil, ErrStepBlocked
	}

	session.CurrentStep = NextStep(session.CurrentStep)
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Retreat is always allowed and never clears entered data. At PET it exits
// the wizard entirely; the session is discarded and exited is true.
func (s *DefaultWizardService) Retreat(ctx context.Context, sessionID string) (*models.WizardSession, bool, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	prev, ok := PrevStep(session.CurrentStep)
	if !ok {
		if err := s.Store.Delete(ctx, sessionID); err != nil {
			s.Logger.Warn("failed to discard session on exit", zap.Error(err))
		}
		return session, true, nil
	}

	session.CurrentStep = prev
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, false, err
	}
	return session, false, nil
}

// FetchAvailability queries atomic slots for the draft's current inputs and
// applies the response only if those inputs are still current. A response for
// superseded inputs is discarded silently, never merged.
func (s *DefaultWizardService) FetchAvailability(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Draft.ScheduledDate == "" {
		return nil, newValidationError("scheduledDate", "select a date before loading time slots")
	}

	details, err := GetServiceByID(session.Draft.ServiceID)
	if err != nil {
		return nil, err
	}

	key := availabilityKey(session.Draft)
	session.AvailabilityKey = key
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	slots, err := s.Availability.FetchAvailableSlots(ctx,
		session.Draft.ScheduledDate,
		session.Draft.ServiceID,
		session.Draft.ServiceType,
		session.Draft.EmployeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}

	// Reload across the suspension point: if the determining inputs changed
	// while the query was in flight, this response is stale.
	session, err = s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.AvailabilityKey != key {
		s.Logger.Debug("discarding superseded availability response",
			zap.String("session", sessionID),
			zap.String("staleKey", key),
			zap.String("currentKey", session.AvailabilityKey))
		return session, nil
	}

	board := BuildSlotBoard(slots, details.Rules.DurationMinutes)
	session.AtomicSlots = slots
	session.Availability = &board
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Cancel discards the session explicitly.
func (s *DefaultWizardService) Cancel(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// mutate is the load-apply-save cycle shared by the plain setters.
func (s *DefaultWizardService) mutate(ctx context.Context, sessionID string, apply func(*models.WizardSession) error) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := apply(session); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// stepContext gathers the lookups ValidateStep needs for the current step.
func (s *DefaultWizardService) stepContext(ctx context.Context, session *models.WizardSession) (StepContext, error) {
	stepCtx := StepContext{}

	details, err := GetServiceByID(session.Draft.ServiceID)
	if err != nil {
		return stepCtx, err
	}
	stepCtx.Rules = details.Rules

	if session.CurrentStep == models.StepPet && session.Draft.PetID != "" {
		pet, err := s.Pets.GetByID(ctx, session.Draft.PetID)
		if err != nil {
			return stepCtx, fmt.Errorf("failed to fetch pet: %w", err)
		}
		stepCtx.Pet = pet
	}
	return stepCtx, nil
}
