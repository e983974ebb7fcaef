package booking

import (
	"fmt"
	"strings"

	"pawbook/models"
)

// CompatibilityResult reports whether a pet may receive a service, with a
// client-displayable reason when it may not.
type CompatibilityResult struct {
	Compatible bool   `json:"compatible"`
	Reason     string `json:"reason,omitempty"`
}

// CheckCompatibility classifies a pet against a service's applicability rules.
// Species exclusion is checked before size exclusion; size rules are skipped
// entirely when the pet's weight is unknown. Pure and deterministic.
func CheckCompatibility(pet models.Pet, rules models.ServiceRules) CompatibilityResult {
	if len(rules.ApplicablePetTypes) > 0 && !containsFold(rules.ApplicablePetTypes, pet.Species) {
		return CompatibilityResult{
			Compatible: false,
			Reason:     fmt.Sprintf("This service is only available for: %s", strings.Join(rules.ApplicablePetTypes, ", ")),
		}
	}

	if len(rules.ApplicablePetSizes) > 0 && pet.Weight != nil {
		size := models.SizeClassForWeight(*pet.Weight)
		if !containsSize(rules.ApplicablePetSizes, size) {
			return CompatibilityResult{
				Compatible: false,
				Reason:     fmt.Sprintf("This service is only available for %s pets", joinSizes(rules.ApplicablePetSizes)),
			}
		}
	}

	return CompatibilityResult{Compatible: true}
}

func containsFold(values []string, v string) bool {
	for _, candidate := range values {
		if strings.EqualFold(candidate, v) {
			return true
		}
	}
	return false
}

func containsSize(sizes []models.SizeClass, s models.SizeClass) bool {
	for _, candidate := range sizes {
		if candidate == s {
			return true
		}
	}
	return false
}

func joinSizes(sizes []models.SizeClass) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = string(s)
	}
	return strings.Join(parts, "/")
}
