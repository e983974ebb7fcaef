package pet

import (
	"context"
	"errors"
	"fmt"

	"pawbook/database"
	"pawbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrPetNotFound = errors.New("pet not found")

// MongoPetRepo implements Repository over the "pets" collection.
type MongoPetRepo struct {
	coll *mongo.Collection
}

func NewMongoPetRepo() *MongoPetRepo {
	return &MongoPetRepo{coll: database.Collection("pets")}
}

func (r *MongoPetRepo) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	var p models.Pet
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrPetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pet %s: %w", id, err)
	}
	return &p, nil
}

func (r *MongoPetRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Pet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query pets for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var pets []models.Pet
	if err := cursor.All(ctx, &pets); err != nil {
		return nil, fmt.Errorf("failed to decode pets: %w", err)
	}
	return pets, nil
}
