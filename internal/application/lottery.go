package application

import (
	"context"
	"log"

	"lotobot/internal/domain/entities"
	"lotobot/internal/ports/output"
)

type LotteryService struct {
	repo     output.LotteryRepository
	notifier output.ResultNotifier
	sched    *Scheduler
}

func NewLotteryService(repo output.LotteryRepository, notifier output.ResultNotifier) *LotteryService {
	s := &LotteryService{
		repo:     repo,
		notifier: notifier,
	}
	s.sched = NewScheduler(s.Resolve)
	return s
}

// CreateLottery registers the lottery, persists it and arms its expiry
// timer. Fails with domain.ErrDuplicateName if the name is taken.
func (s *LotteryService) CreateLottery(ctx context.Context, lottery *entities.Lottery) error {
	if err := s.repo.Create(ctx, lottery); err != nil {
		return err
	}
	s.sched.Arm(lottery.Name, lottery.EndTime)
	return nil
}

// DeleteLottery removes the lottery. Its timer is left armed: the fire
// finds nothing and does nothing.
func (s *LotteryService) DeleteLottery(ctx context.Context, name string) error {
	return s.repo.Delete(ctx, name)
}

// StopLottery marks the lottery inert without removing it. The timer still
// fires; Resolve sees the flag and leaves the lottery in place until an
// explicit deletion.
func (s *LotteryService) StopLottery(ctx context.Context, name string) error {
	return s.repo.SetStopped(ctx, name)
}

func (s *LotteryService) GetLottery(ctx context.Context, name string) (*entities.Lottery, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *LotteryService) GetLotteryByMessageID(ctx context.Context, messageID string) (*entities.Lottery, error) {
	return s.repo.FindByMessageID(ctx, messageID)
}

// ToggleParticipant flips userID's membership and persists. Returns true
// when the user joined, false when they left.
func (s *LotteryService) ToggleParticipant(ctx context.Context, name, userID string) (bool, error) {
	return s.repo.ToggleParticipant(ctx, name, userID)
}

// Restore reloads persisted lotteries and re-arms a timer for each live
// one. Already-expired entries were dropped by the load. Returns the number
// of timers armed.
func (s *LotteryService) Restore(ctx context.Context) (int, error) {
	live, err := s.repo.Load(ctx)
	if err != nil {
		return 0, err
	}
	for i := range live {
		s.sched.Arm(live[i].Name, live[i].EndTime)
	}
	return len(live), nil
}

// Resolve terminates the named lottery: draws winners, publishes the
// outcome and removes it from the store. Already deleted → no-op (this is
// how deletion cancels a pending timer). Stopped → no-op, the lottery stays.
func (s *LotteryService) Resolve(name string) {
	ctx := context.Background()

	lottery, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return
	}
	if lottery.Stopped {
		return
	}

	winners := drawWinners(lottery.Participants, lottery.WinnerCount)
	if err := s.notifier.PublishResult(ctx, lottery, winners); err != nil {
		log.Printf("❌ Erreur lors de la publication du résultat de %q: %v", name, err)
	}
	if err := s.repo.Delete(ctx, name); err != nil {
		log.Printf("❌ Erreur lors de la suppression de la loterie %q: %v", name, err)
	}
}
