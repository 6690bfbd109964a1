package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"lotobot/internal/domain"
	"lotobot/internal/domain/entities"
	"lotobot/internal/ports/output"
)

var _ output.LotteryRepository = (*FileStore)(nil)

// FileStore is the in-memory map of live lotteries backed by one JSON
// file. Every mutation rewrites the whole file before returning, so the
// file always reflects the last completed operation. A single mutex
// serializes all access.
type FileStore struct {
	mu        sync.Mutex
	path      string
	lotteries map[string]*entities.Lottery
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:      path,
		lotteries: make(map[string]*entities.Lottery),
	}
}

func (s *FileStore) Create(ctx context.Context, lottery *entities.Lottery) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lotteries[lottery.Name]; ok {
		return domain.ErrDuplicateName
	}
	s.lotteries[lottery.Name] = lottery.Clone()
	return s.saveLocked()
}

func (s *FileStore) FindByName(ctx context.Context, name string) (*entities.Lottery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lottery, ok := s.lotteries[name]
	if !ok {
		return nil, domain.ErrLotteryNotFound
	}
	return lottery.Clone(), nil
}

// FindByMessageID does a linear scan: button interactions only carry the
// message identity, not the lottery name.
func (s *FileStore) FindByMessageID(ctx context.Context, messageID string) (*entities.Lottery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, lottery := range s.lotteries {
		if lottery.MessageID == messageID {
			return lottery.Clone(), nil
		}
	}
	return nil, domain.ErrLotteryNotFound
}

func (s *FileStore) ToggleParticipant(ctx context.Context, name, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lottery, ok := s.lotteries[name]
	if !ok {
		return false, domain.ErrLotteryNotFound
	}
	joined := true
	if i := slices.Index(lottery.Participants, userID); i >= 0 {
		lottery.Participants = slices.Delete(lottery.Participants, i, i+1)
		joined = false
	} else {
		lottery.Participants = append(lottery.Participants, userID)
	}
	if err := s.saveLocked(); err != nil {
		return false, err
	}
	return joined, nil
}

func (s *FileStore) SetStopped(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lottery, ok := s.lotteries[name]
	if !ok {
		return domain.ErrLotteryNotFound
	}
	lottery.Stopped = true
	return s.saveLocked()
}

func (s *FileStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lotteries[name]; !ok {
		return domain.ErrLotteryNotFound
	}
	delete(s.lotteries, name)
	return s.saveLocked()
}

// Load reads the save file into the store. An absent file yields an empty
// store. Records whose end time has already passed are dropped, and the
// file is rewritten right away when any were, so stale entries never
// survive past one restart.
func (s *FileStore) Load(ctx context.Context) ([]entities.Lottery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.lotteries = make(map[string]*entities.Lottery)
			return nil, nil
		}
		return nil, fmt.Errorf("lecture de %s: %w", s.path, err)
	}

	records := make(map[string]lotteryRecord)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("décodage de %s: %w", s.path, err)
	}

	now := time.Now()
	dropped := false
	s.lotteries = make(map[string]*entities.Lottery, len(records))
	live := make([]entities.Lottery, 0, len(records))
	for name, record := range records {
		lottery, err := recordToLottery(name, record)
		if err != nil {
			return nil, err
		}
		if lottery.IsExpired(now) {
			dropped = true
			continue
		}
		s.lotteries[name] = lottery
		live = append(live, *lottery.Clone())
	}

	if dropped {
		if err := s.saveLocked(); err != nil {
			return nil, err
		}
	}
	return live, nil
}

// saveLocked serializes the whole store to the save file. Write to a temp
// file in the same directory, then rename over the target, so a crash
// mid-write leaves the previous valid file intact. Callers hold s.mu.
func (s *FileStore) saveLocked() error {
	records := make(map[string]lotteryRecord, len(s.lotteries))
	for name, lottery := range s.lotteries {
		records[name] = lotteryToRecord(lottery)
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encodage des loteries: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("création du fichier temporaire: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("écriture de %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("fermeture de %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("remplacement de %s: %w", s.path, err)
	}
	return nil
}
