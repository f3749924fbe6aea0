package model

import (
	"errors"
	"strings"
	"time"
)

// PaymentStatusSuccessful is the only status the webhook ever persists; the
// status endpoint treats anything else as a still-pending registration.
const PaymentStatusSuccessful = "successful"

type Participant struct {
	// Generated public identifier, unique and immutable once assigned.
	ParticipantID string
	// Participant name as supplied in the payment notes.
	Name string
	// Team the participant registered under.
	TeamNumber int64
	// Free-form participant tag (e.g. "solo", "team").
	ParticipantType string
	Email           string
	// Razorpay order this registration belongs to; the polling surface
	// looks participants up by it.
	OrderID string
	// Captured payment, unique across all participants. A redelivered
	// webhook carries the same payment ID and must not create a second
	// record.
	PaymentID     string
	PaymentStatus string
	RegisteredAt  time.Time
}

// RegistrationDetails is the validated form of the free-form "notes" object
// carried inside a captured-payment event.
type RegistrationDetails struct {
	Name            string
	TeamNumber      int64
	Email           string
	ParticipantType string
	// Set when the payer re-registers an existing participant; routes the
	// event onto the update path.
	OldParticipantID string
}

func (d RegistrationDetails) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.Join(ErrValidation, errors.New("name is required"))
	}
	if strings.TrimSpace(d.Email) == "" {
		return errors.Join(ErrValidation, errors.New("email is required"))
	}
	if d.TeamNumber <= 0 {
		return errors.Join(ErrValidation, errors.New("teamNumber must be a positive integer"))
	}
	return nil
}
