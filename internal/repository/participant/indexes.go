package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	participantIDIndexName = "uniq_participant_id"
	paymentIDIndexName     = "uniq_razorpay_payment_id"
)

// EnsureIndexes creates the uniqueness guarantees the reconciler depends on:
// participant IDs are unique once assigned (sparse, so the index tolerates
// legacy records without one) and payment IDs are unique so a redelivered
// webhook cannot insert a second participant.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "participant_id", Value: 1}},
			Options: options.Index().
				SetName(participantIDIndexName).
				SetUnique(true).
				SetSparse(true),
		},
		{
			Keys: bson.D{{Key: "razorpay_payment_id", Value: 1}},
			Options: options.Index().
				SetName(paymentIDIndexName).
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "order_id", Value: 1}},
		},
	}, options.CreateIndexes())

	return err
}
