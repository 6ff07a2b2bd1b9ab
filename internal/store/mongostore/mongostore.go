// Package mongostore implements the repositories on MongoDB. Billing service
// names are embedded in the billing document; patient deletes leave orphans.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

const (
	colPatients     = "patients"
	colAppointments = "appointments"
	colStaff        = "staff"
	colInventory    = "inventory"
	colBilling      = "billing"
	colTodos        = "todos"
	colUsers        = "users"
)

// Connect dials uri and pings the server before returning the client.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(colUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating users index: %w", err)
	}
	_, err = db.Collection(colAppointments).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "patient_id", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("error creating appointments index: %w", err)
	}
	_, err = db.Collection(colBilling).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "patient_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("error creating billing index: %w", err)
	}
	return nil
}

// New wraps db in the store contracts. Close disconnects client.
func New(client *mongo.Client, db *mongo.Database) *store.Store {
	return &store.Store{
		Patients:     &patientRepo{newCollection[models.Patient](db, colPatients)},
		Appointments: &appointmentRepo{newCollection[models.Appointment](db, colAppointments)},
		Staff:        &staffRepo{newCollection[models.Staff](db, colStaff)},
		Inventory:    &inventoryRepo{newCollection[models.InventoryItem](db, colInventory)},
		Billing:      &billingRepo{newCollection[models.BillingRecord](db, colBilling)},
		Todos:        &todoRepo{newCollection[models.Todo](db, colTodos)},
		Users:        &userRepo{newCollection[models.User](db, colUsers)},
		Stats:        &statsRepo{db: db},
		Close:        client.Disconnect,
	}
}

// collection is a typed view over one MongoDB collection.
type collection[T any] struct {
	c *mongo.Collection
}

func newCollection[T any](db *mongo.Database, name string) collection[T] {
	return collection[T]{c: db.Collection(name)}
}

func wrap(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return store.ErrDuplicate
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (c collection[T]) find(ctx context.Context, op string, filter bson.M, sort bson.D) ([]T, error) {
	cursor, err := c.c.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, wrap(op, err)
	}
	defer cursor.Close(ctx)

	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, wrap(op, err)
	}
	return out, nil
}

func (c collection[T]) get(ctx context.Context, op, id string) (*T, error) {
	var doc T
	if err := c.c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, wrap(op, err)
	}
	return &doc, nil
}

func (c collection[T]) insert(ctx context.Context, op string, doc *T) error {
	if _, err := c.c.InsertOne(ctx, doc); err != nil {
		return wrap(op, err)
	}
	return nil
}

func (c collection[T]) replace(ctx context.Context, op, id string, doc *T) error {
	res, err := c.c.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return wrap(op, err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (c collection[T]) delete(ctx context.Context, op, id string) error {
	res, err := c.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrap(op, err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
