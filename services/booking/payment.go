package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pawbook/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	checkout "github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// PaymentProcessor covers both payment paths: a redirect-style card checkout
// and a direct confirmation for cash and bank transfers.
type PaymentProcessor interface {
	InitiateCardCheckout(ctx context.Context, appt models.Appointment) (string, error)
	ConfirmDirectPayment(ctx context.Context, appt models.Appointment, method models.PaymentMethod) (*models.Invoice, error)
}

// StripePaymentProcessor implements PaymentProcessor with Stripe Checkout for
// cards. Direct methods produce a pending invoice settled outside the system.
type StripePaymentProcessor struct {
	Logger     *zap.Logger
	SuccessURL string
	CancelURL  string
}

func NewStripePaymentProcessor(logger *zap.Logger, successURL, cancelURL string) *StripePaymentProcessor {
	return &StripePaymentProcessor{
		Logger:     logger,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	}
}

// InitiateCardCheckout creates a Stripe Checkout session for the appointment's
// service and returns the hosted payment page URL.
func (p *StripePaymentProcessor) InitiateCardCheckout(ctx context.Context, appt models.Appointment) (string, error) {
	details, err := GetServiceByID(appt.ServiceID)
	if err != nil {
		return "", err
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(appt.ID),
		SuccessURL:        stripe.String(p.SuccessURL),
		CancelURL:         stripe.String(p.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(details.Metadata.Currency)),
					UnitAmount: stripe.Int64(details.Metadata.PriceCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(details.Metadata.Name),
					},
				},
			},
		},
	}
	params.Context = ctx

	checkoutSession, err := checkout.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	p.Logger.Info("Card checkout initiated",
		zap.String("appointment", appt.ID),
		zap.String("checkout", checkoutSession.ID))
	return checkoutSession.URL, nil
}

// ConfirmDirectPayment records a cash or bank-transfer payment. Both stay
// "pending" until settled at the counter or by the incoming transfer.
func (p *StripePaymentProcessor) ConfirmDirectPayment(ctx context.Context, appt models.Appointment, method models.PaymentMethod) (*models.Invoice, error) {
	details, err := GetServiceByID(appt.ServiceID)
	if err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		InvoiceID:     uuid.New().String(),
		AppointmentID: appt.ID,
		UserID:        appt.UserID,
		Amount:        details.Metadata.PriceCents,
		Currency:      details.Metadata.Currency,
		Method:        method,
		Status:        "pending",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	p.Logger.Info("Direct payment recorded",
		zap.String("appointment", appt.ID),
		zap.String("invoice", invoice.InvoiceID),
		zap.String("method", string(method)))
	return invoice, nil
}
