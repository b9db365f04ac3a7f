package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

// RecordRepository stores one record kind in its own collection, keyed by _id.
type RecordRepository[T domain.Record] struct {
	col *mongo.Collection
}

func NewRecordRepository[T domain.Record](db *mongo.Database, collection string) *RecordRepository[T] {
	return &RecordRepository[T]{col: db.Collection(collection)}
}

func (r *RecordRepository[T]) Insert(ctx context.Context, rec T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateRecord
		}
		return fmt.Errorf("insert %s: %w", r.col.Name(), err)
	}
	return nil
}

func (r *RecordRepository[T]) Replace(ctx context.Context, rec T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": rec.RecordID()}, rec)
	if err != nil {
		return fmt.Errorf("replace %s: %w", r.col.Name(), err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (r *RecordRepository[T]) Get(ctx context.Context, id string) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec T
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		var zero T
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, domain.ErrRecordNotFound
		}
		return zero, fmt.Errorf("find %s: %w", r.col.Name(), err)
	}
	return rec, nil
}

// List returns all records, newest first.
func (r *RecordRepository[T]) List(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.col.Name(), err)
	}

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.col.Name(), err)
	}
	return out, nil
}

func (r *RecordRepository[T]) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", r.col.Name(), err)
	}
	return int(n), nil
}

// EnsureIndexes creates the listing index on the collection.
func (r *RecordRepository[T]) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
