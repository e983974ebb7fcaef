package booking

import "pawbook/models"

// Reducer-style transitions over the wizard session. Each function mutates the
// session in place and returns whether anything changed; persistence and
// collaborator calls live in the service layer so the cascade rules stay
// testable in isolation.

// applySetPet records the pet selection. A pet change does NOT invalidate the
// chosen date or time slot; only employee and date changes cascade.
func applySetPet(s *models.WizardSession, petID string) {
	s.Draft.PetID = petID
}

// applySetEmployee records the employee selection. Changing an already set
// employee to any different value (including back to unassigned) clears the
// scheduled date and time slot, because availability is employee-scoped. The
// very first assignment from empty does not cascade.
func applySetEmployee(s *models.WizardSession, employeeID string) {
	previous := s.Draft.EmployeeID
	s.Draft.EmployeeID = employeeID

	if previous != "" && previous != employeeID {
		s.Draft.ScheduledDate = ""
		clearTimeSlot(s)
	}
	invalidateAvailability(s)
}

// applySetDate records the scheduled date. A date change invalidates any
// previously chosen slot, since availability is queried per date.
func applySetDate(s *models.WizardSession, date string) {
	s.Draft.ScheduledDate = date

	if !s.Draft.TimeSlot.IsZero() {
		clearTimeSlot(s)
	}
	invalidateAvailability(s)
}

// applySetTimeSlot records the merged slot range. No further cascade.
func applySetTimeSlot(s *models.WizardSession, slot models.SlotRange) {
	s.Draft.TimeSlot = slot
}

func applySetNotes(s *models.WizardSession, notes string) {
	s.Draft.Notes = notes
}

func applySetPaymentMethod(s *models.WizardSession, method models.PaymentMethod) {
	s.Draft.PaymentMethod = method
}

func clearTimeSlot(s *models.WizardSession) {
	s.Draft.TimeSlot = models.SlotRange{}
}

// invalidateAvailability drops any fetched slots and bumps the supersede key
// so late responses for the old inputs are discarded, not merged.
func invalidateAvailability(s *models.WizardSession) {
	s.Availability = nil
	s.AtomicSlots = nil
	s.AvailabilityKey = availabilityKey(s.Draft)
}
