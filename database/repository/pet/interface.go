package pet

import (
	"context"

	"pawbook/models"
)

// Repository defines read operations over pet profiles. Pets are managed by
// the account service; the booking side only reads them.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Pet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Pet, error)
}
