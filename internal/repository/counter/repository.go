// Package repository implements the durable sequence counter: one document
// per counter name, advanced only through atomic $inc updates.
package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type CounterEntity struct {
	ID            string `bson:"_id"`
	SequenceValue int64  `bson:"sequence_value"`
}

type repository struct {
	coll *mongo.Collection
}

func NewCounterRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

// Next atomically increments the named counter and returns the
// post-increment value. The counter document is created on first use.
// Read-increment-write is a single store operation so concurrent webhook
// deliveries can never observe the same sequence value.
func (r *repository) Next(ctx context.Context, name string) (int64, error) {
	const op = "repository.Next"

	res := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"sequence_value": 1}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	)

	var ent CounterEntity
	if err := res.Decode(&ent); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return ent.SequenceValue, nil
}
