package repository

import (
	"context"
	"fmt"
	"time"

	apperrors "cocoresort/pkg/errors"
	"cocoresort/pkg/logger"
	"cocoresort/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Reservations"
)

// Indexes backs List (by day) and per-customer lookups.
var Indexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "reservations_day", Value: 1}, {Key: "created_at", Value: 1}}},
	{Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "start_date", Value: 1}}},
}

// recordDocument is a Record keyed by reservation id so a retried append
// does not store the reservation twice.
type recordDocument struct {
	ID        string    `bson:"_id"`
	Record    `bson:",inline"`
	Day       string    `bson:"reservations_day"`
	CreatedAt time.Time `bson:"created_at"`
}

type MongoRepository struct {
	collection   *mongo.Collection
	readTimeout  time.Duration
	writeTimeout time.Duration
	log          *logger.Logger
}

func NewMongoRepository(db *mongo.Database, readTimeout, writeTimeout time.Duration, log *logger.Logger) *MongoRepository {
	return &MongoRepository{
		collection:   db.Collection(CollectionName),
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
		log:          log,
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.writeTimeout)
	defer cancel()

	if _, err := r.collection.Indexes().CreateMany(ctx, Indexes); err != nil {
		return fmt.Errorf("%w: create reservations index: %w", apperrors.ErrIOFailure, err)
	}
	return nil
}

func (r *MongoRepository) Append(ctx context.Context, res *model.Reservation) error {
	ctx, cancel := withTimeout(ctx, r.writeTimeout)
	defer cancel()

	doc := recordDocument{
		ID:        res.ID,
		Record:    NewRecord(res),
		Day:       reservationsDay(res).Format(time.DateOnly),
		CreatedAt: res.CreatedAt.UTC().Truncate(time.Millisecond),
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		r.log.Debug("Reservation already persisted", "reservation_id", res.ID)
		return nil
	}
	if err != nil {
		r.log.Error("Failed to insert reservation", "reservation_id", res.ID, "error", err)
		return fmt.Errorf("%w: insert reservation %s: %w", apperrors.ErrIOFailure, res.ID, err)
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context, day time.Time) ([]Record, error) {
	ctx, cancel := withTimeout(ctx, r.readTimeout)
	defer cancel()

	filter := bson.M{"reservations_day": day.UTC().Format(time.DateOnly)}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: find reservations: %w", apperrors.ErrIOFailure, err)
	}
	defer cursor.Close(ctx)

	var docs []recordDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: decode reservations: %w", apperrors.ErrIOFailure, err)
	}

	records := make([]Record, 0, len(docs))
	for _, d := range docs {
		records = append(records, d.Record)
	}
	return records, nil
}

func (r *MongoRepository) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.readTimeout)
	defer cancel()
	return r.collection.Database().Client().Ping(ctx, nil)
}

// withTimeout bounds ctx by timeout unless its own deadline is sooner.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithDeadline(ctx, deadline)
	}
	return context.WithTimeout(ctx, timeout)
}
