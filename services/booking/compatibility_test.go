package booking

import (
	"testing"

	"pawbook/models"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestSizeClassForWeight(t *testing.T) {
	tests := []struct {
		weight float64
		want   models.SizeClass
	}{
		{0.5, models.SizeSmall},
		{4.9, models.SizeSmall},
		{5, models.SizeMedium},
		{14.9, models.SizeMedium},
		{15, models.SizeLarge},
		{40, models.SizeLarge},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, models.SizeClassForWeight(tt.weight), "weight %.1f", tt.weight)
	}
}

func TestCheckCompatibility(t *testing.T) {
	tests := []struct {
		name       string
		pet        models.Pet
		rules      models.ServiceRules
		compatible bool
	}{
		{
			name:       "no restrictions",
			pet:        models.Pet{Species: "cat", Weight: floatPtr(20)},
			rules:      models.ServiceRules{},
			compatible: true,
		},
		{
			name:       "species allowed",
			pet:        models.Pet{Species: "dog", Weight: floatPtr(10)},
			rules:      models.ServiceRules{ApplicablePetTypes: []string{"dog", "cat"}},
			compatible: true,
		},
		{
			name:       "species excluded",
			pet:        models.Pet{Species: "rabbit"},
			rules:      models.ServiceRules{ApplicablePetTypes: []string{"dog", "cat"}},
			compatible: false,
		},
		{
			name:       "size excluded",
			pet:        models.Pet{Species: "dog", Weight: floatPtr(30)},
			rules:      models.ServiceRules{ApplicablePetSizes: []models.SizeClass{models.SizeSmall, models.SizeMedium}},
			compatible: false,
		},
		{
			name:       "size allowed",
			pet:        models.Pet{Species: "dog", Weight: floatPtr(7)},
			rules:      models.ServiceRules{ApplicablePetSizes: []models.SizeClass{models.SizeSmall, models.SizeMedium}},
			compatible: true,
		},
		{
			name:       "unknown weight skips size rules",
			pet:        models.Pet{Species: "dog"},
			rules:      models.ServiceRules{ApplicablePetSizes: []models.SizeClass{models.SizeSmall}},
			compatible: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckCompatibility(tt.pet, tt.rules)
			assert.Equal(t, tt.compatible, result.Compatible)
			if !tt.compatible {
				assert.NotEmpty(t, result.Reason)
			} else {
				assert.Empty(t, result.Reason)
			}
		})
	}
}

func TestCheckCompatibilitySpeciesCheckedBeforeSize(t *testing.T) {
	// A small cat against a dogs-only small/medium service must fail on
	// species, not on size.
	pet := models.Pet{Species: "cat", Weight: floatPtr(4)}
	rules := models.ServiceRules{
		ApplicablePetTypes: []string{"dog"},
		ApplicablePetSizes: []models.SizeClass{models.SizeSmall, models.SizeMedium},
	}

	result := CheckCompatibility(pet, rules)
	assert.False(t, result.Compatible)
	assert.Contains(t, result.Reason, "dog")
	assert.NotContains(t, result.Reason, "small")
}
