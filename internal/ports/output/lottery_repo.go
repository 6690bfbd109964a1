package output

import (
	"context"

	"lotobot/internal/domain/entities"
)

// LotteryRepository is the store of live lotteries. Every mutating call
// persists to durable storage before returning.
type LotteryRepository interface {
	Create(ctx context.Context, lottery *entities.Lottery) error
	FindByName(ctx context.Context, name string) (*entities.Lottery, error)
	FindByMessageID(ctx context.Context, messageID string) (*entities.Lottery, error)
	ToggleParticipant(ctx context.Context, name, userID string) (bool, error)
	SetStopped(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
	// Load reads durable storage into the store, drops already-expired
	// lotteries (re-saving if it dropped any) and returns the live ones.
	Load(ctx context.Context) ([]entities.Lottery, error)
}
