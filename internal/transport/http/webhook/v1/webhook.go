package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/kunalz06/btf-website/internal/model"
	"github.com/kunalz06/btf-website/platform/logger"
)

const signatureHeader = "X-Razorpay-Signature"

type RegistrationService interface {
	ProcessPaymentEvent(ctx context.Context, event model.PaymentEvent) error
}

type handler struct {
	svc    RegistrationService
	secret string
}

func NewWebhookHandler(svc RegistrationService, secret string) *handler {
	return &handler{svc: svc, secret: secret}
}

// Provider wire envelope. The notes object is free-form on the provider
// side; it is validated into model.RegistrationDetails before anything is
// persisted.
type paymentWebhook struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity paymentEntity `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

type paymentEntity struct {
	ID      string       `json:"id"`
	OrderID string       `json:"order_id"`
	Notes   paymentNotes `json:"notes"`
}

type paymentNotes struct {
	Name             string `json:"name"`
	TeamNumber       string `json:"teamNumber"`
	Email            string `json:"email"`
	ParticipantType  string `json:"participantType"`
	OldParticipantID string `json:"old_participant_id"`
}

type ackResponse struct {
	Status string `json:"status"`
}

// HandlePaymentWebhook consumes the raw body, verifies the signature before
// any parsing, and dispatches captured payments to the reconciler. All
// non-fatal outcomes ack with {"status":"ok"}; a mismatched signature is
// logged and acked so the provider does not retry a delivery that will
// never verify.
func (h *handler) HandlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.With(logger.String("delivery_id", uuid.NewString()))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error(ctx, "failed to read webhook body", logger.ErrorF(err))
		http.Error(w, "Webhook processing error.", http.StatusInternalServerError)
		return
	}

	if !VerifySignature(h.secret, body, r.Header.Get(signatureHeader)) {
		log.Warn(ctx, "webhook signature mismatch")
		writeJSON(ctx, w, http.StatusOK, ackResponse{Status: "ok"})
		return
	}

	var envelope paymentWebhook
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Error(ctx, "failed to parse webhook body", logger.ErrorF(err))
		http.Error(w, "Webhook processing error.", http.StatusInternalServerError)
		return
	}

	if envelope.Event != model.EventPaymentCaptured {
		log.Debug(ctx, "ignoring event", logger.String("event", envelope.Event))
		writeJSON(ctx, w, http.StatusOK, ackResponse{Status: "ok"})
		return
	}

	event, err := envelope.toPaymentEvent()
	if err != nil {
		log.Error(ctx, "invalid webhook payload", logger.ErrorF(err))
		http.Error(w, "Webhook processing error.", http.StatusInternalServerError)
		return
	}

	if err := h.svc.ProcessPaymentEvent(ctx, event); err != nil {
		log.Error(ctx, "failed to process payment event", logger.ErrorF(err))
		http.Error(w, "Webhook processing error.", http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, ackResponse{Status: "ok"})
}

func (e *paymentWebhook) toPaymentEvent() (model.PaymentEvent, error) {
	entity := e.Payload.Payment.Entity

	var teamNumber int64
	if raw := strings.TrimSpace(entity.Notes.TeamNumber); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return model.PaymentEvent{}, errors.Join(
				model.ErrValidation,
				fmt.Errorf("teamNumber %q is not an integer", raw),
			)
		}
		teamNumber = n
	}

	return model.PaymentEvent{
		Event:     e.Event,
		PaymentID: entity.ID,
		OrderID:   entity.OrderID,
		Details: model.RegistrationDetails{
			Name:             entity.Notes.Name,
			TeamNumber:       teamNumber,
			Email:            entity.Notes.Email,
			ParticipantType:  entity.Notes.ParticipantType,
			OldParticipantID: entity.Notes.OldParticipantID,
		},
	}, nil
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "failed to encode response", logger.ErrorF(err))
	}
}
