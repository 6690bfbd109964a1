package output

import (
	"context"

	"lotobot/internal/domain/entities"
)

// ResultNotifier publishes the outcome of a resolved lottery on the
// platform message that carried its controls. An empty winners slice
// means nobody entered.
type ResultNotifier interface {
	PublishResult(ctx context.Context, lottery *entities.Lottery, winners []string) error
}
