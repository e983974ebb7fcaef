package models

import "time"

// Invoice records the outcome of a payment attempt for an appointment.
type Invoice struct {
	InvoiceID     string        `bson:"invoice_id" json:"invoiceId"`
	AppointmentID string        `bson:"appointment_id" json:"appointmentId"`
	UserID        string        `bson:"user_id" json:"userId"`
	Amount        int64         `bson:"amount" json:"amount"` // minor units
	Currency      string        `bson:"currency" json:"currency"`
	Method        PaymentMethod `bson:"method" json:"method"`
	PaymentID     string        `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	Status        string        `bson:"status" json:"status"` // "pending", "paid"
	CreatedAt     time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updatedAt"`
}
