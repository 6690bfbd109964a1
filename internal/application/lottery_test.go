package application

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"lotobot/internal/domain"
	"lotobot/internal/domain/entities"
	"lotobot/internal/infrastructure/storage"
	"lotobot/internal/ports/output"
)

type fakeNotifier struct {
	mu        sync.Mutex
	calls     int
	winners   []string
	published chan struct{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{published: make(chan struct{}, 8)}
}

func (f *fakeNotifier) PublishResult(ctx context.Context, lottery *entities.Lottery, winners []string) error {
	f.mu.Lock()
	f.calls++
	f.winners = slices.Clone(winners)
	f.mu.Unlock()
	f.published <- struct{}{}
	return nil
}

func (f *fakeNotifier) snapshot() (int, []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls, slices.Clone(f.winners)
}

func (f *fakeNotifier) waitPublished(t *testing.T) {
	t.Helper()
	select {
	case <-f.published:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a published result")
	}
}

func newTestService(t *testing.T) (*LotteryService, *storage.FileStore, *fakeNotifier) {
	t.Helper()
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "lotteries.json"))
	notifier := newFakeNotifier()
	return NewLotteryService(store, notifier), store, notifier
}

var _ output.ResultNotifier = (*fakeNotifier)(nil)

func lotteryNamed(name string, winnerCount int, endTime time.Time) *entities.Lottery {
	return &entities.Lottery{
		Name:        name,
		Prize:       "Un café",
		WinnerCount: winnerCount,
		EndTime:     endTime,
		ChannelID:   "111111111111111111",
		MessageID:   "222222222222222222",
	}
}

func TestCreateDuplicateName(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	endTime := time.Now().Add(time.Hour)

	if err := svc.CreateLottery(ctx, lotteryNamed("Gift", 2, endTime)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.CreateLottery(ctx, lotteryNamed("Gift", 2, endTime)); !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestResolveDrawsWinnersAndRemovesLottery(t *testing.T) {
	ctx := context.Background()
	svc, _, notifier := newTestService(t)

	if err := svc.CreateLottery(ctx, lotteryNamed("Gift", 2, time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("create: %v", err)
	}
	entrants := []string{"user-1", "user-2", "user-3"}
	for _, user := range entrants {
		if _, err := svc.ToggleParticipant(ctx, "Gift", user); err != nil {
			t.Fatalf("toggle %s: %v", user, err)
		}
	}

	svc.Resolve("Gift")

	calls, winners := notifier.snapshot()
	if calls != 1 {
		t.Fatalf("expected 1 published result, got %d", calls)
	}
	if len(winners) != 2 {
		t.Fatalf("expected 2 winners among 3 entrants, got %v", winners)
	}
	if winners[0] == winners[1] {
		t.Fatalf("duplicate winner: %v", winners)
	}
	for _, w := range winners {
		if !slices.Contains(entrants, w) {
			t.Fatalf("winner %q is not an entrant", w)
		}
	}
	if _, err := svc.GetLottery(ctx, "Gift"); !errors.Is(err, domain.ErrLotteryNotFound) {
		t.Fatalf("expected lottery removed after resolution, got %v", err)
	}
}

func TestResolveFewerEntrantsThanWinners(t *testing.T) {
	ctx := context.Background()
	svc, _, notifier := newTestService(t)

	if err := svc.CreateLottery(ctx, lotteryNamed("Gros lot", 5, time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.ToggleParticipant(ctx, "Gros lot", "user-1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	svc.Resolve("Gros lot")

	if _, winners := notifier.snapshot(); len(winners) != 1 || winners[0] != "user-1" {
		t.Fatalf("expected the single entrant to win, got %v", winners)
	}
}

func TestResolveWithoutParticipants(t *testing.T) {
	ctx := context.Background()
	svc, _, notifier := newTestService(t)

	if err := svc.CreateLottery(ctx, lotteryNamed("Empty", 2, time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("create: %v", err)
	}

	svc.Resolve("Empty")

	calls, winners := notifier.snapshot()
	if calls != 1 {
		t.Fatalf("expected the no-participant outcome to be published, got %d calls", calls)
	}
	if len(winners) != 0 {
		t.Fatalf("expected zero winners, got %v", winners)
	}
	if _, err := svc.GetLottery(ctx, "Empty"); !errors.Is(err, domain.ErrLotteryNotFound) {
		t.Fatalf("expected lottery removed after resolution, got %v", err)
	}
}

func TestResolveUnknownName(t *testing.T) {
	svc, _, notifier := newTestService(t)

	svc.Resolve("fantôme")

	if calls, _ := notifier.snapshot(); calls != 0 {
		t.Fatalf("expected no published result, got %d calls", calls)
	}
}

func TestResolveStoppedLotteryStaysInert(t *testing.T) {
	ctx := context.Background()
	svc, _, notifier := newTestService(t)

	if err := svc.CreateLottery(ctx, lotteryNamed("Pause", 1, time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.StopLottery(ctx, "Pause"); err != nil {
		t.Fatalf("stop: %v", err)
	}

	svc.Resolve("Pause")

	if calls, _ := notifier.snapshot(); calls != 0 {
		t.Fatalf("expected no published result for a stopped lottery, got %d calls", calls)
	}
	lottery, err := svc.GetLottery(ctx, "Pause")
	if err != nil {
		t.Fatalf("expected stopped lottery to stay in the store, got %v", err)
	}
	if !lottery.Stopped {
		t.Fatal("stopped flag not set")
	}
}

func TestDeleteBeforeTimerFires(t *testing.T) {
	ctx := context.Background()
	svc, _, notifier := newTestService(t)

	if err := svc.CreateLottery(ctx, lotteryNamed("Gift", 2, time.Now().Add(50*time.Millisecond))); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.DeleteLottery(ctx, "Gift"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	time.Sleep(300 * time.Millisecond)

	if calls, _ := notifier.snapshot(); calls != 0 {
		t.Fatalf("expected the fired timer to be a no-op, got %d published results", calls)
	}
}

func TestCreateArmsTimerThatResolves(t *testing.T) {
	ctx := context.Background()
	svc, _, notifier := newTestService(t)

	if err := svc.CreateLottery(ctx, lotteryNamed("Flash", 1, time.Now())); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.ToggleParticipant(ctx, "Flash", "user-1"); err != nil && !errors.Is(err, domain.ErrLotteryNotFound) {
		t.Fatalf("toggle: %v", err)
	}

	notifier.waitPublished(t)

	if _, err := svc.GetLottery(ctx, "Flash"); !errors.Is(err, domain.ErrLotteryNotFound) {
		t.Fatalf("expected lottery removed after the timer fired, got %v", err)
	}
}

func TestRestoreRearmsPersistedLotteries(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lotteries.json")

	seed := storage.NewFileStore(path)
	if err := seed.Create(ctx, lotteryNamed("Reprise", 1, time.Now().Add(100*time.Millisecond))); err != nil {
		t.Fatalf("seed create: %v", err)
	}

	notifier := newFakeNotifier()
	svc := NewLotteryService(storage.NewFileStore(path), notifier)
	restored, err := svc.Restore(ctx)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored != 1 {
		t.Fatalf("expected 1 restored lottery, got %d", restored)
	}

	notifier.waitPublished(t)

	if _, err := svc.GetLottery(ctx, "Reprise"); !errors.Is(err, domain.ErrLotteryNotFound) {
		t.Fatalf("expected restored lottery resolved and removed, got %v", err)
	}
}

func TestDrawWinnersSizes(t *testing.T) {
	participants := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name         string
		participants []string
		count        int
		want         int
	}{
		{name: "more entrants than winners", participants: participants, count: 2, want: 2},
		{name: "fewer entrants than winners", participants: participants[:2], count: 5, want: 2},
		{name: "exact", participants: participants, count: 5, want: 5},
		{name: "no entrants", participants: nil, count: 3, want: 0},
		{name: "zero count", participants: participants, count: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			winners := drawWinners(tt.participants, tt.count)
			if len(winners) != tt.want {
				t.Fatalf("expected %d winners, got %v", tt.want, winners)
			}
			seen := make(map[string]bool, len(winners))
			for _, w := range winners {
				if seen[w] {
					t.Fatalf("duplicate winner %q in %v", w, winners)
				}
				seen[w] = true
				if !slices.Contains(tt.participants, w) {
					t.Fatalf("winner %q is not a participant", w)
				}
			}
		})
	}
}

func TestDrawWinnersEveryParticipantCanWin(t *testing.T) {
	participants := []string{"a", "b", "c"}
	won := make(map[string]bool)
	for i := 0; i < 200; i++ {
		for _, w := range drawWinners(participants, 1) {
			won[w] = true
		}
	}
	if len(won) != len(participants) {
		t.Fatalf("expected every participant to win at least once over 200 draws, got %v", won)
	}
}
