package models

import "time"

// SizeClass is a derived bucket computed from a pet's weight.
type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
)

// Pet represents a customer's pet profile.
type Pet struct {
	ID        string    `bson:"id" json:"id"`
	OwnerID   string    `bson:"owner_id" json:"ownerId"`
	Name      string    `bson:"name" json:"name"`
	Species   string    `bson:"species" json:"species"`       // e.g., "dog", "cat"
	Breed     string    `bson:"breed,omitempty" json:"breed,omitempty"`
	Weight    *float64  `bson:"weight,omitempty" json:"weight,omitempty"` // kg; nil when unknown
	BirthDate string    `bson:"birth_date,omitempty" json:"birthDate,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// SizeClassForWeight buckets a weight in kg into small/medium/large.
func SizeClassForWeight(weight float64) SizeClass {
	switch {
	case weight < 5:
		return SizeSmall
	case weight < 15:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// SizeClass returns the pet's size bucket, or "" when the weight is unknown.
func (p Pet) SizeClass() SizeClass {
	if p.Weight == nil {
		return ""
	}
	return SizeClassForWeight(*p.Weight)
}
