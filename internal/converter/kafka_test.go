package converter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunalz06/btf-website/internal/model"
)

func TestRegistrationConfirmedToBytes(t *testing.T) {
	t.Parallel()

	eventID := uuid.New()
	event := model.RegistrationConfirmed{
		EventID:       eventID,
		ParticipantID: "WBKON5607A1",
		OrderID:       "order_xyz",
		PaymentID:     "pay_abc",
		Name:          "Alice",
		Email:         "alice@example.com",
		RegisteredAt:  time.Date(2026, time.March, 14, 16, 0, 0, 0, time.FixedZone("IST", 5*3600+1800)),
	}

	payload, err := NewKafkaConverter().RegistrationConfirmedToBytes(event)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"event_id": "`+eventID.String()+`",
		"participant_id": "WBKON5607A1",
		"order_id": "order_xyz",
		"payment_id": "pay_abc",
		"name": "Alice",
		"email": "alice@example.com",
		"registered_at": "2026-03-14T10:30:00Z"
	}`, string(payload))
}
