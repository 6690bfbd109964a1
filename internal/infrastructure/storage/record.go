package storage

import (
	"fmt"
	"strconv"
	"time"

	"lotobot/internal/domain/entities"
)

// timeLayout is the save-file timestamp format, local time zone, second
// precision.
const timeLayout = "2006-01-02 15:04:05"

// lotteryRecord is the on-disk shape of one lottery. Key names (including
// start_e for the creator) and integer IDs are the legacy save-file format,
// kept so an existing lotteries.json stays readable.
type lotteryRecord struct {
	EndTime      string   `json:"end_time"`
	Participants []string `json:"participants"`
	Prize        string   `json:"prize"`
	WinnerCount  int      `json:"winner_count"`
	ChannelID    int64    `json:"channel_id"`
	GuildID      int64    `json:"guild_id"`
	CreatorID    int64    `json:"start_e"`
	MessageID    int64    `json:"message_id"`
	Stop         bool     `json:"stop"`
}

func idToInt64(id string) int64 {
	if id == "" {
		return 0
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func int64ToID(n int64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

func lotteryToRecord(l *entities.Lottery) lotteryRecord {
	participants := l.Participants
	if participants == nil {
		participants = []string{}
	}
	return lotteryRecord{
		EndTime:      l.EndTime.Format(timeLayout),
		Participants: participants,
		Prize:        l.Prize,
		WinnerCount:  l.WinnerCount,
		ChannelID:    idToInt64(l.ChannelID),
		GuildID:      idToInt64(l.GuildID),
		CreatorID:    idToInt64(l.CreatorID),
		MessageID:    idToInt64(l.MessageID),
		Stop:         l.Stopped,
	}
}

func recordToLottery(name string, r lotteryRecord) (*entities.Lottery, error) {
	endTime, err := time.ParseInLocation(timeLayout, r.EndTime, time.Local)
	if err != nil {
		return nil, fmt.Errorf("loterie %q: end_time invalide (%q): %w", name, r.EndTime, err)
	}
	return &entities.Lottery{
		Name:         name,
		Prize:        r.Prize,
		WinnerCount:  r.WinnerCount,
		EndTime:      endTime,
		Participants: r.Participants,
		ChannelID:    int64ToID(r.ChannelID),
		MessageID:    int64ToID(r.MessageID),
		GuildID:      int64ToID(r.GuildID),
		CreatorID:    int64ToID(r.CreatorID),
		Stopped:      r.Stop,
	}, nil
}
