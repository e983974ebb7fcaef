package booking

import "pawbook/models"

// ServiceDetails couples catalogue metadata with the applicability rules the
// compatibility engine consumes.
type ServiceDetails struct {
	Metadata models.ServiceMetadata `json:"metadata"`
	Rules    models.ServiceRules    `json:"rules"`
}

var servicesMap = map[string]ServiceDetails{
	"FullGroom": {
		Metadata: models.ServiceMetadata{
			ID:          "FullGroom",
			ServiceType: "grooming",
			Name:        "Full Grooming",
			Icon:        "✂️",
			Description: "Bath, haircut, nail trim and ear cleaning.",
			PriceCents:  5500,
			Currency:    "USD",
		},
		Rules: models.ServiceRules{
			ApplicablePetTypes: []string{"dog", "cat"},
			DurationMinutes:    90,
		},
	},
	"BathBrush": {
		Metadata: models.ServiceMetadata{
			ID:          "BathBrush",
			ServiceType: "grooming",
			Name:        "Bath & Brush",
			Icon:        "🛁",
			Description: "Shampoo, blow-dry and full brush-out.",
			PriceCents:  3000,
			Currency:    "USD",
		},
		Rules: models.ServiceRules{
			ApplicablePetTypes: []string{"dog"},
			DurationMinutes:    60,
		},
	},
	"NailTrim": {
		Metadata: models.ServiceMetadata{
			ID:          "NailTrim",
			ServiceType: "grooming",
			Name:        "Nail Trim",
			Icon:        "💅",
			PriceCents:  1500,
			Currency:    "USD",
		},
		Rules: models.ServiceRules{
			DurationMinutes: 30,
		},
	},
	"VetConsult": {
		Metadata: models.ServiceMetadata{
			ID:          "VetConsult",
			ServiceType: "veterinary",
			Name:        "Veterinary Consultation",
			Icon:        "🩺",
			Description: "General check-up with a staff veterinarian.",
			PriceCents:  6000,
			Currency:    "USD",
		},
		Rules: models.ServiceRules{
			DurationMinutes: 30,
		},
	},
	"Daycare": {
		Metadata: models.ServiceMetadata{
			ID:          "Daycare",
			ServiceType: "daycare",
			Name:        "Daycare (Half Day)",
			Icon:        "🏠",
			Description: "Supervised play for small and medium dogs.",
			PriceCents:  4000,
			Currency:    "USD",
		},
		Rules: models.ServiceRules{
			ApplicablePetTypes: []string{"dog"},
			ApplicablePetSizes: []models.SizeClass{models.SizeSmall, models.SizeMedium},
			DurationMinutes:    240,
		},
	},
	"DogWalk": {
		Metadata: models.ServiceMetadata{
			ID:          "DogWalk",
			ServiceType: "walking",
			Name:        "Dog Walking",
			Icon:        "🐾",
			PriceCents:  2000,
			Currency:    "USD",
		},
		Rules: models.ServiceRules{
			ApplicablePetTypes: []string{"dog"},
			DurationMinutes:    60,
		},
	},
}

// GetServicesMap returns the static map of all service details.
func GetServicesMap() map[string]ServiceDetails {
	return servicesMap
}

// GetServiceByID looks up one catalogue entry.
func GetServiceByID(serviceID string) (*ServiceDetails, error) {
	details, exists := servicesMap[serviceID]
	if !exists {
		return nil, ErrServiceNotFound
	}
	return &details, nil
}
