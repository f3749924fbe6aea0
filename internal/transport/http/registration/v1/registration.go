package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kunalz06/btf-website/internal/model"
	"github.com/kunalz06/btf-website/platform/logger"
)

type RegistrationService interface {
	StatusByOrder(ctx context.Context, orderID string) (*model.Participant, error)
	ParticipantByID(ctx context.Context, participantID string) (*model.Participant, error)
}

type ReceiptRenderer interface {
	Render(w io.Writer, p *model.Participant) error
}

type handler struct {
	svc      RegistrationService
	receipts ReceiptRenderer
}

func NewRegistrationHandler(svc RegistrationService, receipts ReceiptRenderer) *handler {
	return &handler{svc: svc, receipts: receipts}
}

type participantDTO struct {
	Name            string    `json:"name"`
	TeamNumber      int64     `json:"teamNumber"`
	ParticipantID   string    `json:"participantId"`
	ParticipantType string    `json:"participantType,omitempty"`
	Email           string    `json:"email"`
	OrderID         string    `json:"orderId"`
	PaymentID       string    `json:"razorpayPaymentId"`
	PaymentStatus   string    `json:"paymentStatus"`
	RegisteredAt    time.Time `json:"registrationDate"`
}

type statusResponse struct {
	Status      string          `json:"status"`
	Participant *participantDTO `json:"participant,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
}

type getDetailsRequest struct {
	ParticipantID string `json:"participantId"`
}

// RegistrationStatus is the polling surface: absence of a successful
// participant for the order is a normal pending state, never an error.
func (h *handler) RegistrationStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID := r.URL.Query().Get("orderId")
	if strings.TrimSpace(orderID) == "" {
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Message: "Order ID is required."})
		return
	}

	p, err := h.svc.StatusByOrder(ctx, orderID)
	switch {
	case errors.Is(err, model.ErrParticipantNotFound):
		writeJSON(ctx, w, http.StatusOK, statusResponse{Status: "pending"})
	case err != nil:
		writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Message: "Server error"})
	default:
		writeJSON(ctx, w, http.StatusOK, statusResponse{
			Status:      "completed",
			Participant: participantToDTO(p),
		})
	}
}

// GetDetails renders the PDF receipt for a participant ID.
func (h *handler) GetDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req getDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.ParticipantID) == "" {
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Message: "Participant ID is required."})
		return
	}

	p, err := h.svc.ParticipantByID(ctx, req.ParticipantID)
	switch {
	case errors.Is(err, model.ErrParticipantNotFound):
		writeJSON(ctx, w, http.StatusNotFound, errorResponse{Message: "Participant not found."})
		return
	case errors.Is(err, model.ErrValidation):
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Message: "Participant ID is required."})
		return
	case err != nil:
		writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Message: "Server error"})
		return
	}

	// Render into memory first so a renderer failure can still produce a
	// clean 500 instead of a truncated download.
	var buf bytes.Buffer
	if err := h.receipts.Render(&buf, p); err != nil {
		logger.Error(ctx, "failed to render receipt",
			logger.String("participant_id", p.ParticipantID),
			logger.ErrorF(err),
		)
		writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Message: "Server error"})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=receipt_%s.pdf", p.ParticipantID))
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Error(ctx, "failed to write receipt", logger.ErrorF(err))
	}
}

func participantToDTO(p *model.Participant) *participantDTO {
	if p == nil {
		return nil
	}

	return &participantDTO{
		Name:            p.Name,
		TeamNumber:      p.TeamNumber,
		ParticipantID:   p.ParticipantID,
		ParticipantType: p.ParticipantType,
		Email:           p.Email,
		OrderID:         p.OrderID,
		PaymentID:       p.PaymentID,
		PaymentStatus:   p.PaymentStatus,
		RegisteredAt:    p.RegisteredAt,
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "failed to encode response", logger.ErrorF(err))
	}
}
