package repository

import (
	"github.com/samber/lo"

	"github.com/kunalz06/btf-website/internal/model"
)

func EntityToModel(e *ParticipantEntity) *model.Participant {
	if e == nil {
		return nil
	}

	return &model.Participant{
		ParticipantID:   e.ParticipantID,
		Name:            e.Name,
		TeamNumber:      e.TeamNumber,
		ParticipantType: e.ParticipantType,
		Email:           e.Email,
		OrderID:         e.OrderID,
		PaymentID:       e.PaymentID,
		PaymentStatus:   e.PaymentStatus,
		RegisteredAt:    e.RegisteredAt,
	}
}

func EntityFromModel(p *model.Participant) *ParticipantEntity {
	if p == nil {
		return nil
	}

	return &ParticipantEntity{
		ParticipantID:   p.ParticipantID,
		Name:            p.Name,
		TeamNumber:      p.TeamNumber,
		ParticipantType: p.ParticipantType,
		Email:           p.Email,
		OrderID:         p.OrderID,
		PaymentID:       p.PaymentID,
		PaymentStatus: lo.Ternary(
			p.PaymentStatus == "",
			model.PaymentStatusSuccessful,
			p.PaymentStatus,
		),
		RegisteredAt: p.RegisteredAt,
	}
}
