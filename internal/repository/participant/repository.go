package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/kunalz06/btf-website/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewParticipantRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

// Create inserts a new participant record. Duplicate-key violations are
// translated into the sentinel for the offending index so the caller can
// tell a redelivered webhook from a generated-ID collision.
func (r *repository) Create(ctx context.Context, p *model.Participant) error {
	const op = "repository.Create"

	ent := EntityFromModel(p)
	if ent.RegisteredAt.IsZero() {
		ent.RegisteredAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, ent); err != nil {
		if dup := duplicateKeyError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateByParticipantID overwrites the registration fields of an existing
// participant and returns the updated record. The participant ID itself is
// never touched.
func (r *repository) UpdateByParticipantID(
	ctx context.Context,
	participantID string,
	p *model.Participant,
) (*model.Participant, error) {
	const op = "repository.UpdateByParticipantID"

	res := r.coll.FindOneAndUpdate(ctx,
		bson.M{"participant_id": participantID},
		bson.M{"$set": bson.M{
			"name":                p.Name,
			"team_number":         p.TeamNumber,
			"email":               p.Email,
			"participant_type":    p.ParticipantType,
			"order_id":            p.OrderID,
			"razorpay_payment_id": p.PaymentID,
			"payment_status":      model.PaymentStatusSuccessful,
			"registration_date":   time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var ent ParticipantEntity
	if err := res.Decode(&ent); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrParticipantNotFound
		}
		if dup := duplicateKeyError(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) ByParticipantID(ctx context.Context, participantID string) (*model.Participant, error) {
	const op = "repository.ByParticipantID"

	var ent ParticipantEntity
	err := r.coll.FindOne(ctx, bson.M{"participant_id": participantID}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) ByOrderID(ctx context.Context, orderID, status string) (*model.Participant, error) {
	const op = "repository.ByOrderID"

	var ent ParticipantEntity
	err := r.coll.FindOne(ctx, bson.M{
		"order_id":       orderID,
		"payment_status": status,
	}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

// duplicateKeyError maps a unique-index violation to its domain sentinel,
// keyed on the index names created by EnsureIndexes.
func duplicateKeyError(err error) error {
	if err == nil || !mongo.IsDuplicateKeyError(err) {
		return nil
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, paymentIDIndexName):
		return model.ErrPaymentAlreadyRecorded
	case strings.Contains(msg, participantIDIndexName):
		return model.ErrParticipantIDTaken
	default:
		return model.ErrPaymentAlreadyRecorded
	}
}
