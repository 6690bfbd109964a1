package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"lotobot/internal/domain/entities"
	"lotobot/internal/ports/output"
	pkgdiscord "lotobot/pkg/discord"
)

var _ output.ResultNotifier = (*ResultNotifier)(nil)

// ResultNotifier publishes lottery outcomes by editing the announcement
// message: outcome embed in, buttons out.
type ResultNotifier struct {
	session *discordgo.Session
}

func NewResultNotifier(session *discordgo.Session) *ResultNotifier {
	return &ResultNotifier{session: session}
}

func (n *ResultNotifier) PublishResult(ctx context.Context, lottery *entities.Lottery, winners []string) error {
	embed := pkgdiscord.BuildNoWinnersEmbed()
	if len(winners) > 0 {
		embed = pkgdiscord.BuildWinnersEmbed(lottery.Prize, winners)
	}

	embeds := []*discordgo.MessageEmbed{embed}
	components := []discordgo.MessageComponent{}
	if _, err := n.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         lottery.MessageID,
		Channel:    lottery.ChannelID,
		Embeds:     &embeds,
		Components: &components,
	}); err != nil {
		return fmt.Errorf("édition du message d'annonce: %w", err)
	}
	return nil
}
