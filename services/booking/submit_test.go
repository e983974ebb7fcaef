package booking

import (
	"context"
	"testing"

	"pawbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewSession(method models.PaymentMethod) *models.WizardSession {
	s := scheduledSession()
	s.CurrentStep = models.StepReview
	s.Draft.PaymentMethod = method
	return s
}

func TestSubmitCardCreatesAppointmentBeforeCheckout(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	f.seed(t, reviewSession(models.PaymentCard))

	result, err := f.svc.Submit(ctx, "sess-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"create", "checkout"}, f.rec.calls)
	assert.NotEmpty(t, result.AppointmentID)
	assert.Equal(t, "https://pay.example.test/cs_123", result.RedirectURL)
	assert.Equal(t, "pending", result.PaymentStatus)

	appt := f.appointments.created[result.AppointmentID]
	assert.Equal(t, "2026-09-03", appt.Date)
	assert.Equal(t, 480, appt.Start)
	assert.Equal(t, 570, appt.End)
	assert.Equal(t, "Biscuit", appt.PetName)
	assert.Equal(t, models.AppointmentConfirmed, appt.Status)

	assert.Equal(t, []string{result.AppointmentID}, f.reminders.scheduled)

	_, err = f.store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSubmitCashRecordsPendingInvoice(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	f.seed(t, reviewSession(models.PaymentCash))

	result, err := f.svc.Submit(ctx, "sess-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"create", "direct"}, f.rec.calls)
	assert.Empty(t, result.RedirectURL)
	assert.Equal(t, "pending", result.PaymentStatus)
	assert.Equal(t, "cash/pending", f.appointments.outcomes[result.AppointmentID])

	_, err = f.store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSubmitRetryReusesCreatedAppointment(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	f.seed(t, reviewSession(models.PaymentCard))
	f.payments.failuresLeft = 1

	_, err := f.svc.Submit(ctx, "sess-1")
	require.Error(t, err)

	// The draft survives the failed payment; the created appointment is
	// remembered so a retry cannot duplicate it.
	session, err := f.store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, session.IsSubmitting)
	assert.NotEmpty(t, session.AppointmentID)
	assert.Equal(t, 1, f.appointments.createCalls)
	firstID := session.AppointmentID

	result, err := f.svc.Submit(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, firstID, result.AppointmentID)
	assert.Equal(t, 1, f.appointments.createCalls)
	assert.Equal(t, []string{"create", "checkout", "checkout"}, f.rec.calls)
}

func TestSubmitRejectedWhileInFlight(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	s := reviewSession(models.PaymentCard)
	s.IsSubmitting = true
	f.seed(t, s)

	_, err := f.svc.Submit(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.Zero(t, f.appointments.createCalls)
}

func TestSubmitRequiresReviewStep(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	s := reviewSession(models.PaymentCard)
	s.CurrentStep = models.StepPayment
	f.seed(t, s)

	_, err := f.svc.Submit(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotOnReview)
}

func TestSubmitIncompleteDraftFailsCleanly(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	s := reviewSession(models.PaymentCash)
	s.Draft.TimeSlot = models.SlotRange{}
	f.seed(t, s)

	_, err := f.svc.Submit(ctx, "sess-1")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	session, err := f.store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, session.IsSubmitting)
	assert.Zero(t, f.appointments.createCalls)
}

func TestSubmitWithoutPaymentMethod(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	f.seed(t, reviewSession(""))

	_, err := f.svc.Submit(ctx, "sess-1")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "paymentMethod", vErr.Field)

	// The appointment was created; only the payment leg failed.
	session, err := f.store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.AppointmentID)
	assert.False(t, session.IsSubmitting)
}
