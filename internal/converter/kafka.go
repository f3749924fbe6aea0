package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kunalz06/btf-website/internal/model"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

type registrationConfirmedRecord struct {
	EventID       string `json:"event_id"`
	ParticipantID string `json:"participant_id"`
	OrderID       string `json:"order_id"`
	PaymentID     string `json:"payment_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	RegisteredAt  string `json:"registered_at"`
}

func (c *kafkaConverter) RegistrationConfirmedToBytes(m model.RegistrationConfirmed) ([]byte, error) {
	payload, err := json.Marshal(registrationConfirmedRecord{
		EventID:       m.EventID.String(),
		ParticipantID: m.ParticipantID,
		OrderID:       m.OrderID,
		PaymentID:     m.PaymentID,
		Name:          m.Name,
		Email:         m.Email,
		RegisteredAt:  m.RegisteredAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal registration confirmed: %w", err)
	}

	return payload, nil
}
