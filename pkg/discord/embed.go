package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	colorGreen = 0x57F287
	colorGold  = 0xF1C40F
	colorRed   = 0xED4245
	colorBlue  = 0x3498DB
)

// Mention formats a user ID as a Discord mention.
func Mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// BuildLotteryEmbed builds the announcement embed posted when a lottery opens.
func BuildLotteryEmbed(prize string, endTime time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎊 La loterie commence !",
		Description: fmt.Sprintf("🏆 Prix: %s\n⏳ Fin: %s", prize, endTime.Format("02/01/2006 à 15:04:05")),
		Color:       colorGreen,
	}
}

// BuildWinnersEmbed builds the outcome embed listing the drawn winners.
func BuildWinnersEmbed(prize string, winners []string) *discordgo.MessageEmbed {
	mentions := make([]string, len(winners))
	for i, w := range winners {
		mentions[i] = Mention(w)
	}
	return &discordgo.MessageEmbed{
		Title:       "🎉 Loterie terminée !",
		Description: fmt.Sprintf("🏆 Gagnants: %s\n🎁 Prix: %s", strings.Join(mentions, ", "), prize),
		Color:       colorGold,
	}
}

// BuildNoWinnersEmbed builds the outcome embed for a lottery nobody entered.
func BuildNoWinnersEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ Loterie terminée !",
		Description: "⚠️ Personne n'a participé, aucun gagnant.",
		Color:       colorRed,
	}
}

// BuildParticipantsEmbed builds the private participant list shown to admins.
func BuildParticipantsEmbed(participants []string) *discordgo.MessageEmbed {
	desc := "Aucun participant pour le moment."
	if len(participants) > 0 {
		lines := make([]string, len(participants))
		for i, p := range participants {
			lines[i] = "- " + Mention(p)
		}
		desc = strings.Join(lines, "\n")
	}
	return &discordgo.MessageEmbed{
		Title:       "📜 Liste des participants",
		Description: desc,
		Color:       colorBlue,
	}
}
