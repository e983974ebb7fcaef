package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pawbook/database"
	"pawbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// MongoAppointmentRepo implements Repository over the "appointments" collection.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	return &MongoAppointmentRepo{coll: database.Collection("appointments")}
}

func (r *MongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("failed to insert appointment: %w", err)
	}
	return nil
}

func (r *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

func (r *MongoAppointmentRepo) ListForDay(ctx context.Context, date, employeeID string) ([]models.Appointment, error) {
	filter := bson.M{"date": date}
	if employeeID != "" {
		filter["employee_id"] = employeeID
	}
	return r.list(ctx, filter)
}

func (r *MongoAppointmentRepo) ListRange(ctx context.Context, from, to, employeeID string) ([]models.Appointment, error) {
	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	if employeeID != "" {
		filter["employee_id"] = employeeID
	}
	return r.list(ctx, filter)
}

func (r *MongoAppointmentRepo) list(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}

func (r *MongoAppointmentRepo) SetPaymentOutcome(ctx context.Context, id, method, status string) error {
	update := bson.M{"$set": bson.M{"payment_method": method, "payment_status": status}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update payment outcome for %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (r *MongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update status for %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}
