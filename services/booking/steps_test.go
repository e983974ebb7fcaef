package booking

import (
	"testing"

	"pawbook/models"

	"github.com/stretchr/testify/assert"
)

func TestNextStepWalksLinearOrder(t *testing.T) {
	assert.Equal(t, models.StepEmployee, NextStep(models.StepPet))
	assert.Equal(t, models.StepDate, NextStep(models.StepEmployee))
	assert.Equal(t, models.StepTime, NextStep(models.StepDate))
	assert.Equal(t, models.StepNotes, NextStep(models.StepTime))
	assert.Equal(t, models.StepPayment, NextStep(models.StepNotes))
	assert.Equal(t, models.StepReview, NextStep(models.StepPayment))
	// REVIEW is terminal.
	assert.Equal(t, models.StepReview, NextStep(models.StepReview))
}

func TestPrevStep(t *testing.T) {
	prev, ok := PrevStep(models.StepEmployee)
	assert.True(t, ok)
	assert.Equal(t, models.StepPet, prev)

	prev, ok = PrevStep(models.StepReview)
	assert.True(t, ok)
	assert.Equal(t, models.StepPayment, prev)

	// PET has no predecessor; retreating from it exits the wizard.
	_, ok = PrevStep(models.StepPet)
	assert.False(t, ok)
}

func TestValidateStep(t *testing.T) {
	compatiblePet := &models.Pet{Species: "dog", Weight: floatPtr(8)}
	dogRules := models.ServiceRules{ApplicablePetTypes: []string{"dog"}, DurationMinutes: 60}

	tests := []struct {
		name  string
		step  models.WizardStep
		draft models.BookingDraft
		ctx   StepContext
		want  bool
	}{
		{
			name: "pet gate fails without a selection",
			step: models.StepPet,
			want: false,
		},
		{
			name:  "pet gate passes for a compatible pet",
			step:  models.StepPet,
			draft: models.BookingDraft{PetID: "pet-1"},
			ctx:   StepContext{Pet: compatiblePet, Rules: dogRules},
			want:  true,
		},
		{
			name:  "pet gate fails for an incompatible pet",
			step:  models.StepPet,
			draft: models.BookingDraft{PetID: "pet-2"},
			ctx:   StepContext{Pet: &models.Pet{Species: "cat"}, Rules: dogRules},
			want:  false,
		},
		{
			name: "employee step is optional",
			step: models.StepEmployee,
			want: true,
		},
		{
			name: "date gate fails without a date",
			step: models.StepDate,
			want: false,
		},
		{
			name:  "date gate passes with a date",
			step:  models.StepDate,
			draft: models.BookingDraft{ScheduledDate: "2026-09-03"},
			want:  true,
		},
		{
			name: "time gate fails without a slot",
			step: models.StepTime,
			want: false,
		},
		{
			name:  "time gate passes with a slot",
			step:  models.StepTime,
			draft: models.BookingDraft{TimeSlot: models.SlotRange{Start: 480, End: 540, MergedSlotIndices: []int{0, 1}}},
			want:  true,
		},
		{
			name: "notes step is optional",
			step: models.StepNotes,
			want: true,
		},
		{
			name: "payment gate fails without a method",
			step: models.StepPayment,
			want: false,
		},
		{
			name:  "payment gate passes with a method",
			step:  models.StepPayment,
			draft: models.BookingDraft{PaymentMethod: models.PaymentCash},
			want:  true,
		},
		{
			name: "review is always passable",
			step: models.StepReview,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateStep(tt.step, tt.draft, tt.ctx))
		})
	}
}
