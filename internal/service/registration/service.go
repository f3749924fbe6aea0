package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kunalz06/btf-website/internal/identifier"
	"github.com/kunalz06/btf-website/internal/model"
	"github.com/kunalz06/btf-website/platform/logger"
)

// participantCounterName keys the durable sequence counter document.
const participantCounterName = "participantId"

// maxIDAttempts bounds retries when a generated ID collides on its random
// suffix.
const maxIDAttempts = 3

type ParticipantRepository interface {
	Create(ctx context.Context, p *model.Participant) error
	UpdateByParticipantID(ctx context.Context, participantID string, p *model.Participant) (*model.Participant, error)
	ByParticipantID(ctx context.Context, participantID string) (*model.Participant, error)
	ByOrderID(ctx context.Context, orderID, status string) (*model.Participant, error)
}

type CounterRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}

type ConfirmedSender interface {
	SendRegistrationConfirmed(ctx context.Context, event model.RegistrationConfirmed) error
}

type service struct {
	participants ParticipantRepository
	counters     CounterRepository
	sender       ConfirmedSender
	gen          *identifier.Generator

	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewRegistrationService(
	participants ParticipantRepository,
	counters CounterRepository,
	sender ConfirmedSender,
	gen *identifier.Generator,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		participants:   participants,
		counters:       counters,
		sender:         sender,
		gen:            gen,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// ProcessPaymentEvent reconciles a verified provider event into exactly one
// participant write. Non-captured events and update targets that do not
// exist are no-ops; a redelivered payment ID is a no-op success.
func (s *service) ProcessPaymentEvent(ctx context.Context, event model.PaymentEvent) error {
	const op = "registration.service.ProcessPaymentEvent"
	log := logger.With(
		logger.String("payment_id", event.PaymentID),
		logger.String("order_id", event.OrderID),
	)

	if event.Event != model.EventPaymentCaptured {
		log.Debug(ctx, "ignoring event", logger.String("event", event.Event))
		return nil
	}

	if err := event.Details.Validate(); err != nil {
		log.Error(ctx, "invalid registration details", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if event.Details.OldParticipantID != "" {
		return s.updateExisting(ctx, op, log, event)
	}

	return s.createNew(ctx, op, log, event)
}

func (s *service) updateExisting(
	ctx context.Context,
	op string,
	log *logger.Logger,
	event model.PaymentEvent,
) error {
	updated, err := s.participants.UpdateByParticipantID(
		ctx,
		event.Details.OldParticipantID,
		participantFromEvent(event),
	)
	if err != nil {
		if errors.Is(err, model.ErrParticipantNotFound) {
			// Update path never creates records.
			log.Warn(ctx, "no participant for old id",
				logger.String("old_participant_id", event.Details.OldParticipantID),
			)
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "updated participant",
		logger.String("participant_id", updated.ParticipantID),
		logger.String("name", updated.Name),
	)
	s.publishConfirmed(ctx, log, updated)
	return nil
}

func (s *service) createNew(
	ctx context.Context,
	op string,
	log *logger.Logger,
	event model.PaymentEvent,
) error {
	seq, err := s.counters.Next(ctx, participantCounterName)
	if err != nil {
		return fmt.Errorf("%s: counter: %w", op, err)
	}
	if seq > identifier.SoftSequenceLimit {
		log.Warn(ctx, "participant id sequence exceeded soft limit",
			logger.Int64("sequence", seq),
			logger.Int("limit", identifier.SoftSequenceLimit),
		)
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		p := participantFromEvent(event)
		p.ParticipantID = s.gen.Generate(seq)
		p.RegisteredAt = time.Now()

		err = s.participants.Create(ctx, p)
		switch {
		case errors.Is(err, model.ErrPaymentAlreadyRecorded):
			log.Info(ctx, "duplicate webhook delivery, payment already recorded")
			return nil
		case errors.Is(err, model.ErrParticipantIDTaken):
			log.Warn(ctx, "generated participant id collided, retrying",
				logger.String("participant_id", p.ParticipantID),
			)
			continue
		case err != nil:
			return fmt.Errorf("%s: %w", op, err)
		}

		log.Info(ctx, "created participant",
			logger.String("participant_id", p.ParticipantID),
			logger.String("name", p.Name),
		)
		s.publishConfirmed(ctx, log, p)
		return nil
	}

	return fmt.Errorf("%s: %w", op, model.ErrParticipantIDTaken)
}

// publishConfirmed emits the registration.confirmed event. The participant
// write is already durable, so publish failures are logged and swallowed.
func (s *service) publishConfirmed(ctx context.Context, log *logger.Logger, p *model.Participant) {
	event := model.NewRegistrationConfirmed(p)
	if err := s.sender.SendRegistrationConfirmed(ctx, event); err != nil {
		log.Error(ctx, "failed to publish registration confirmed",
			logger.String("participant_id", p.ParticipantID),
			logger.ErrorF(err),
		)
	}
}

// StatusByOrder returns the successful participant for an order.
// ErrParticipantNotFound is a normal outcome: the registration is pending.
func (s *service) StatusByOrder(ctx context.Context, orderID string) (*model.Participant, error) {
	const op = "registration.service.StatusByOrder"

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, errors.Join(model.ErrValidation, errors.New("orderId must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	p, err := s.participants.ByOrderID(ctx, orderID, model.PaymentStatusSuccessful)
	if err != nil {
		if !errors.Is(err, model.ErrParticipantNotFound) {
			logger.Error(ctx, "repository by order id", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s *service) ParticipantByID(ctx context.Context, participantID string) (*model.Participant, error) {
	const op = "registration.service.ParticipantByID"

	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return nil, errors.Join(model.ErrValidation, errors.New("participantId must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	p, err := s.participants.ByParticipantID(ctx, participantID)
	if err != nil {
		if !errors.Is(err, model.ErrParticipantNotFound) {
			logger.Error(ctx, "repository by participant id", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func participantFromEvent(event model.PaymentEvent) *model.Participant {
	return &model.Participant{
		Name:            event.Details.Name,
		TeamNumber:      event.Details.TeamNumber,
		ParticipantType: event.Details.ParticipantType,
		Email:           event.Details.Email,
		OrderID:         event.OrderID,
		PaymentID:       event.PaymentID,
		PaymentStatus:   model.PaymentStatusSuccessful,
	}
}
