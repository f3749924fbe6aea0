package model

import (
	"time"

	"github.com/google/uuid"
)

// EventPaymentCaptured is the only provider event kind that is processed;
// all other kinds are acknowledged and ignored.
const EventPaymentCaptured = "payment.captured"

// PaymentEvent is a verified, typed payment-provider event ready for
// reconciliation.
type PaymentEvent struct {
	Event     string
	PaymentID string
	OrderID   string
	Details   RegistrationDetails
}

// RegistrationConfirmed is published after a participant record has been
// durably created or updated.
type RegistrationConfirmed struct {
	EventID       uuid.UUID
	ParticipantID string
	OrderID       string
	PaymentID     string
	Name          string
	Email         string
	RegisteredAt  time.Time
}

func NewRegistrationConfirmed(p *Participant) RegistrationConfirmed {
	return RegistrationConfirmed{
		EventID:       uuid.New(),
		ParticipantID: p.ParticipantID,
		OrderID:       p.OrderID,
		PaymentID:     p.PaymentID,
		Name:          p.Name,
		Email:         p.Email,
		RegisteredAt:  p.RegisteredAt,
	}
}
