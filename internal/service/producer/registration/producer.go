package regproducer

import (
	"context"
	"fmt"

	"github.com/kunalz06/btf-website/internal/model"
	"github.com/kunalz06/btf-website/platform/kafka"
)

type Converter interface {
	RegistrationConfirmedToBytes(m model.RegistrationConfirmed) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewRegistrationProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendRegistrationConfirmed(ctx context.Context, event model.RegistrationConfirmed) error {
	payload, err := s.conv.RegistrationConfirmedToBytes(event)
	if err != nil {
		return fmt.Errorf("converter registration_confirmed error: %w", err)
	}

	if err := s.producer.Send(ctx, []byte(event.ParticipantID), payload); err != nil {
		return fmt.Errorf("producer to registration.confirmed topic error: %w", err)
	}

	return nil
}
