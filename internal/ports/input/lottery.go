package input

import (
	"context"

	"lotobot/internal/domain/entities"
)

type LotteryUseCase interface {
	CreateLottery(ctx context.Context, lottery *entities.Lottery) error
	DeleteLottery(ctx context.Context, name string) error
	StopLottery(ctx context.Context, name string) error
	GetLottery(ctx context.Context, name string) (*entities.Lottery, error)
	GetLotteryByMessageID(ctx context.Context, messageID string) (*entities.Lottery, error)
	ToggleParticipant(ctx context.Context, name, userID string) (bool, error)
	Restore(ctx context.Context) (int, error)
}
