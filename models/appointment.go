package models

import "time"

// Appointment statuses.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Appointment represents a persisted appointment record.
type Appointment struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id" json:"userId"`
	PetID         string    `bson:"pet_id" json:"petId"`
	PetName       string    `bson:"pet_name,omitempty" json:"petName,omitempty"`
	CustomerName  string    `bson:"customer_name,omitempty" json:"customerName,omitempty"`
	EmployeeID    string    `bson:"employee_id,omitempty" json:"employeeId,omitempty"`
	ServiceID     string    `bson:"service_id" json:"serviceId"`
	ServiceType   string    `bson:"service_type" json:"serviceType"`
	Date          string    `bson:"date" json:"date"` // YYYY-MM-DD
	Start         int       `bson:"start" json:"start"` // Minutes from midnight
	End           int       `bson:"end" json:"end"`     // Minutes from midnight
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status        string    `bson:"status" json:"status"`
	PaymentMethod string    `bson:"payment_method,omitempty" json:"paymentMethod,omitempty"`
	PaymentStatus string    `bson:"payment_status,omitempty" json:"paymentStatus,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// StartAt resolves the appointment start as an absolute time in loc.
func (a Appointment) StartAt(loc *time.Location) time.Time {
	day, err := time.ParseInLocation("2006-01-02", a.Date, loc)
	if err != nil {
		return time.Time{}
	}
	return day.Add(time.Duration(a.Start) * time.Minute)
}

// EndAt resolves the appointment end as an absolute time in loc.
func (a Appointment) EndAt(loc *time.Location) time.Time {
	day, err := time.ParseInLocation("2006-01-02", a.Date, loc)
	if err != nil {
		return time.Time{}
	}
	return day.Add(time.Duration(a.End) * time.Minute)
}

// CalendarAppointment is the read-model the staff calendar consumes.
type CalendarAppointment struct {
	ID         string    `json:"id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Status     string    `json:"status"`
	EmployeeID string    `json:"employeeId,omitempty"`
	Customer   string    `json:"customer,omitempty"`
	Pet        string    `json:"pet,omitempty"`
}

// ToCalendar projects the persisted record into the calendar read-model.
func (a Appointment) ToCalendar(loc *time.Location) CalendarAppointment {
	return CalendarAppointment{
		ID:         a.ID,
		Start:      a.StartAt(loc),
		End:        a.EndAt(loc),
		Status:     a.Status,
		EmployeeID: a.EmployeeID,
		Customer:   a.CustomerName,
		Pet:        a.PetName,
	}
}
