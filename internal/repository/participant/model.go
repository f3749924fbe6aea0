package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ParticipantEntity struct {
	ID              bson.ObjectID `bson:"_id,omitempty"`
	ParticipantID   string        `bson:"participant_id,omitempty"`
	Name            string        `bson:"name"`
	TeamNumber      int64         `bson:"team_number"`
	ParticipantType string        `bson:"participant_type,omitempty"`
	Email           string        `bson:"email"`
	OrderID         string        `bson:"order_id,omitempty"`
	PaymentID       string        `bson:"razorpay_payment_id"`
	PaymentStatus   string        `bson:"payment_status"`
	RegisteredAt    time.Time     `bson:"registration_date"`
}
