package discord

import (
	"lotobot/internal/ports/input"
	"lotobot/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	lotteryUseCase input.LotteryUseCase
	translator     output.T
	adminRoleID    string
}

// NewHandler creates a Handler.
func NewHandler(lotteryUseCase input.LotteryUseCase, translator output.T, adminRoleID string) *Handler {
	return &Handler{
		lotteryUseCase: lotteryUseCase,
		translator:     translator,
		adminRoleID:    adminRoleID,
	}
}
