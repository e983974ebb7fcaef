package models

// WizardStep identifies one step of the booking wizard.
type WizardStep string

const (
	StepPet      WizardStep = "PET"
	StepEmployee WizardStep = "EMPLOYEE"
	StepDate     WizardStep = "DATE"
	StepTime     WizardStep = "TIME"
	StepNotes    WizardStep = "NOTES"
	StepPayment  WizardStep = "PAYMENT"
	StepReview   WizardStep = "REVIEW"
)

// PaymentMethod enumerates how a booking can be paid for.
type PaymentMethod string

const (
	PaymentCard         PaymentMethod = "card"
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// BookingDraft is the single source of truth for an in-progress booking.
// One instance lives per wizard session and is discarded on completion or cancel.
type BookingDraft struct {
	ServiceID     string        `json:"serviceId"`
	ServiceType   string        `json:"serviceType"`
	PetID         string        `json:"petId,omitempty"`
	EmployeeID    string        `json:"employeeId,omitempty"` // unassigned is valid
	ScheduledDate string        `json:"scheduledDate,omitempty"` // YYYY-MM-DD
	TimeSlot      SlotRange     `json:"timeSlot"`
	Notes         string        `json:"notes,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
}

// WizardSession is the Redis-persisted state of one booking attempt.
// The draft and the submission flag are owned exclusively by the wizard service.
type WizardSession struct {
	SessionID     string       `json:"sessionId"`
	UserID        string       `json:"userId"`
	Draft         BookingDraft `json:"draft"`
	CurrentStep   WizardStep   `json:"currentStep"`
	IsSubmitting  bool         `json:"isSubmitting"`
	AppointmentID string       `json:"appointmentId,omitempty"` // set once creation succeeds; reused on retry

	// AvailabilityKey identifies the inputs of the newest availability query.
	// Responses carrying a different key are stale and get discarded.
	AvailabilityKey string         `json:"availabilityKey,omitempty"`
	Availability    *SlotBoard     `json:"availability,omitempty"`
	AtomicSlots     []AtomicTimeSlot `json:"atomicSlots,omitempty"`
}

// SubmitResult reports what happened after a successful submission.
type SubmitResult struct {
	AppointmentID string `json:"appointmentId"`
	RedirectURL   string `json:"redirectUrl,omitempty"` // card checkouts only
	PaymentStatus string `json:"paymentStatus,omitempty"`
}
