package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	"lotobot/internal/domain"
	pkgdiscord "lotobot/pkg/discord"
)

const (
	buttonJoinID = "btn_join_lottery"
	buttonShowID = "btn_show_participants"
)

func buildLotteryComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "💎 Participer", Style: discordgo.SuccessButton, CustomID: buttonJoinID},
			discordgo.Button{Label: "🌐 Participants", Style: discordgo.PrimaryButton, CustomID: buttonShowID},
		}},
	}
}

// HandleJoin toggles the clicking user in/out of the lottery carried by the
// interaction's message.
func (h *Handler) HandleJoin(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)

	lottery, err := h.lotteryUseCase.GetLotteryByMessageID(ctx, i.Message.ID)
	if err != nil {
		respondEphemeral(s, i.Interaction, h.translator.T(locale, "lottery_not_found", nil))
		return
	}

	joined, err := h.lotteryUseCase.ToggleParticipant(ctx, lottery.Name, i.Member.User.ID)
	if err != nil {
		// La loterie a pu se résoudre entre la recherche et le toggle.
		if errors.Is(err, domain.ErrLotteryNotFound) {
			respondEphemeral(s, i.Interaction, h.translator.T(locale, "lottery_not_found", nil))
		} else {
			respondEphemeral(s, i.Interaction, h.translator.T(locale, "internal_error", nil))
		}
		return
	}

	key := "lottery_left"
	if joined {
		key = "lottery_joined"
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale, key, map[string]any{"Name": lottery.Name}))
}

// HandleShow shows the participant list, admin role only.
func (h *Handler) HandleShow(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)

	if !memberHasRole(i.Member, h.adminRoleID) {
		respondEphemeral(s, i.Interaction, h.translator.T(locale, "not_authorized", nil))
		return
	}

	lottery, err := h.lotteryUseCase.GetLotteryByMessageID(ctx, i.Message.ID)
	if err != nil {
		respondEphemeral(s, i.Interaction, h.translator.T(locale, "lottery_not_found", nil))
		return
	}

	respondEphemeralEmbed(s, i.Interaction, pkgdiscord.BuildParticipantsEmbed(lottery.Participants))
}
