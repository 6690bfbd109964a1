package entities

import (
	"slices"
	"time"
)

// Lottery is a timed giveaway keyed by its human-chosen name.
type Lottery struct {
	Name         string
	Prize        string
	WinnerCount  int
	EndTime      time.Time
	Participants []string
	ChannelID    string
	MessageID    string
	GuildID      string
	CreatorID    string
	Stopped      bool
}

func (l *Lottery) IsExpired(now time.Time) bool {
	return !l.EndTime.After(now)
}

func (l *Lottery) HasParticipant(userID string) bool {
	return slices.Contains(l.Participants, userID)
}

// Clone returns a deep copy, so callers can't mutate the store's state
// behind its lock.
func (l *Lottery) Clone() *Lottery {
	c := *l
	c.Participants = slices.Clone(l.Participants)
	return &c
}
