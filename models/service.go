package models

// ServiceRules describes which pets a service applies to and how long it takes.
// Empty rule sets mean "no restriction".
type ServiceRules struct {
	ApplicablePetTypes []string    `json:"applicablePetTypes,omitempty"`
	ApplicablePetSizes []SizeClass `json:"applicablePetSizes,omitempty"`
	DurationMinutes    int         `json:"durationMinutes"`
}

// ServiceMetadata is the catalogue-facing description of a service.
type ServiceMetadata struct {
	ID          string `json:"id"`
	ServiceType string `json:"serviceType"` // e.g., "grooming", "veterinary"
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"priceCents"`
	Currency    string `json:"currency"`
}
