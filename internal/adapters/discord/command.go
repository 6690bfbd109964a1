package discord

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"lotobot/internal/domain"
	"lotobot/internal/domain/entities"
	pkgdiscord "lotobot/pkg/discord"
)

var (
	minOneWinner    = float64(1)
	minZeroMinutes  = float64(0)
	commandLotterie = &discordgo.ApplicationCommand{
		Name:        "loterie",
		Description: "Gérer les loteries du serveur",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "creer",
				Description: "Créer une nouvelle loterie",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "nom", Description: "Nom unique de la loterie", Required: true},
					{Type: discordgo.ApplicationCommandOptionString, Name: "prix", Description: "Prix à gagner", Required: true},
					{Type: discordgo.ApplicationCommandOptionInteger, Name: "gagnants", Description: "Nombre de gagnants à tirer", Required: true, MinValue: &minOneWinner},
					{Type: discordgo.ApplicationCommandOptionInteger, Name: "minutes", Description: "Durée en minutes", Required: true, MinValue: &minZeroMinutes},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "supprimer",
				Description: "Supprimer une loterie",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "nom", Description: "Nom de la loterie", Required: true},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "stop",
				Description: "Suspendre une loterie sans la supprimer",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "nom", Description: "Nom de la loterie", Required: true},
				},
			},
		},
	}
)

// HandleCommand dispatches the /loterie subcommands. Every subcommand is
// admin-only.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)
	if !memberHasRole(i.Member, h.adminRoleID) {
		respondEphemeral(s, i.Interaction, h.translator.T(locale, "not_authorized", nil))
		return
	}

	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]
	switch sub.Name {
	case "creer":
		h.handleCreate(s, i, sub)
	case "supprimer":
		h.handleDelete(s, i, sub)
	case "stop":
		h.handleStop(s, i, sub)
	}
}

func (h *Handler) handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()
	locale := string(i.Locale)

	var name, prize string
	var winnerCount, minutes int
	for _, opt := range sub.Options {
		switch opt.Name {
		case "nom":
			name = opt.StringValue()
		case "prix":
			prize = opt.StringValue()
		case "gagnants":
			winnerCount = int(opt.IntValue())
		case "minutes":
			minutes = int(opt.IntValue())
		}
	}

	if _, err := h.lotteryUseCase.GetLottery(ctx, name); err == nil {
		respondEphemeral(s, i.Interaction, h.translator.T(locale, "lottery_duplicate", map[string]any{"Name": name}))
		return
	}

	// Poste d'abord un message d'attente: son ID identifie le message qui
	// portera les boutons de la loterie.
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: h.translator.T(locale, "lottery_creating", nil),
		},
	}); err != nil {
		log.Printf("❌ Erreur lors de la réponse à l'interaction: %v", err)
		return
	}
	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		log.Printf("❌ Erreur lors de la récupération du message d'annonce: %v", err)
		return
	}

	endTime := time.Now().Add(time.Duration(minutes) * time.Minute)
	lottery := &entities.Lottery{
		Name:        name,
		Prize:       prize,
		WinnerCount: winnerCount,
		EndTime:     endTime,
		ChannelID:   i.ChannelID,
		MessageID:   msg.ID,
		GuildID:     i.GuildID,
		CreatorID:   i.Member.User.ID,
	}
	if err := h.lotteryUseCase.CreateLottery(ctx, lottery); err != nil {
		content := h.translator.T(locale, "internal_error", nil)
		if errors.Is(err, domain.ErrDuplicateName) {
			content = h.translator.T(locale, "lottery_duplicate", map[string]any{"Name": name})
		}
		if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
			log.Printf("❌ Erreur lors de la mise à jour de l'annonce: %v", err)
		}
		return
	}

	empty := ""
	embeds := []*discordgo.MessageEmbed{pkgdiscord.BuildLotteryEmbed(prize, endTime)}
	components := buildLotteryComponents()
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content:    &empty,
		Embeds:     &embeds,
		Components: &components,
	}); err != nil {
		log.Printf("❌ Erreur lors de la mise à jour de l'annonce: %v", err)
	}
}

func (h *Handler) handleDelete(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()
	locale := string(i.Locale)
	name := sub.Options[0].StringValue()

	if err := h.lotteryUseCase.DeleteLottery(ctx, name); err != nil {
		if errors.Is(err, domain.ErrLotteryNotFound) {
			respondEphemeral(s, i.Interaction, h.translator.T(locale, "lottery_not_found", nil))
		} else {
			log.Printf("❌ Erreur lors de la suppression de la loterie %q: %v", name, err)
			respondEphemeral(s, i.Interaction, h.translator.T(locale, "internal_error", nil))
		}
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale, "lottery_deleted", map[string]any{"Name": name}))
}

func (h *Handler) handleStop(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()
	locale := string(i.Locale)
	name := sub.Options[0].StringValue()

	if err := h.lotteryUseCase.StopLottery(ctx, name); err != nil {
		if errors.Is(err, domain.ErrLotteryNotFound) {
			respondEphemeral(s, i.Interaction, h.translator.T(locale, "lottery_not_found", nil))
		} else {
			log.Printf("❌ Erreur lors de la suspension de la loterie %q: %v", name, err)
			respondEphemeral(s, i.Interaction, h.translator.T(locale, "internal_error", nil))
		}
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale, "lottery_stopped", map[string]any{"Name": name}))
}
