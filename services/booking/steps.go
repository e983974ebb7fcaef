package booking

import "pawbook/models"

// stepOrder is the closed, linear ordering of the wizard. PET is initial,
// REVIEW is terminal.
var stepOrder = []models.WizardStep{
	models.StepPet,
	models.StepEmployee,
	models.StepDate,
	models.StepTime,
	models.StepNotes,
	models.StepPayment,
	models.StepReview,
}

func stepIndex(step models.WizardStep) int {
	for i, s := range stepOrder {
		if s == step {
			return i
		}
	}
	return -1
}

// NextStep returns the step after the given one, or the same step when the
// wizard is already at REVIEW.
func NextStep(step models.WizardStep) models.WizardStep {
	idx := stepIndex(step)
	if idx < 0 || idx == len(stepOrder)-1 {
		return step
	}
	return stepOrder[idx+1]
}

// PrevStep returns the step before the given one; at PET the second return is
// false, signalling that retreat exits the wizard.
func PrevStep(step models.WizardStep) (models.WizardStep, bool) {
	idx := stepIndex(step)
	if idx <= 0 {
		return step, false
	}
	return stepOrder[idx-1], true
}

// StepContext carries the read-only lookups step validation needs.
type StepContext struct {
	Pet   *models.Pet
	Rules models.ServiceRules
}

// ValidateStep reports whether the gate for the given step holds on the draft.
// EMPLOYEE, NOTES and REVIEW are always passable.
func ValidateStep(step models.WizardStep, draft models.BookingDraft, ctx StepContext) bool {
	switch step {
	case models.StepPet:
		if draft.PetID == "" || ctx.Pet == nil {
			return false
		}
		return CheckCompatibility(*ctx.Pet, ctx.Rules).Compatible
	case models.StepEmployee:
		return true
	case models.StepDate:
		return draft.ScheduledDate != ""
	case models.StepTime:
		return !draft.TimeSlot.IsZero()
	case models.StepNotes:
		return true
	case models.StepPayment:
		return draft.PaymentMethod != ""
	case models.StepReview:
		return true
	default:
		return false
	}
}
