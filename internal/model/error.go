package model

import "errors"

var (
	ErrValidation          = errors.New("validation error")      // 400
	ErrParticipantNotFound = errors.New("participant not found") // 404

	// ErrPaymentAlreadyRecorded means the payment ID already exists in the
	// store: a redelivered webhook. The caller treats it as a no-op success.
	ErrPaymentAlreadyRecorded = errors.New("payment already recorded")
	// ErrParticipantIDTaken means the generated participant ID collided on
	// its random suffix. The caller regenerates and retries.
	ErrParticipantIDTaken = errors.New("participant id taken")
)
