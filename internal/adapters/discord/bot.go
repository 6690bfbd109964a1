package discord

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"lotobot/internal/application"
	"lotobot/internal/config"
	"lotobot/internal/ports/input"
	"lotobot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session        *discordgo.Session
	config         *config.Config
	handler        *Handler
	lotteryUseCase input.LotteryUseCase
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(cfg *config.Config, repo output.LotteryRepository, translator output.T) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la création de la session Discord: %w", err)
	}

	lotteryUC := application.NewLotteryService(repo, NewResultNotifier(s))
	handler := NewHandler(lotteryUC, translator, cfg.AdminRoleID)

	bot := &Bot{
		session:        s,
		config:         cfg,
		handler:        handler,
		lotteryUseCase: lotteryUC,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == commandLotterie.Name {
			b.handler.HandleCommand(s, i)
		}
	case discordgo.InteractionMessageComponent:
		switch i.MessageComponentData().CustomID {
		case buttonJoinID:
			b.handler.HandleJoin(s, i)
		case buttonShowID:
			b.handler.HandleShow(s, i)
		}
	}
}

// Start runs the bot until interrupted. Persisted lotteries are restored
// (and their timers re-armed) once the session is open, so outcomes can be
// published for lotteries expiring right away.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, commandLotterie); err != nil {
		log.Printf("⚠️ Erreur lors de l'enregistrement de la commande %s: %v", commandLotterie.Name, err)
	}

	restored, err := b.lotteryUseCase.Restore(context.Background())
	if err != nil {
		return fmt.Errorf("restauration des loteries: %w", err)
	}
	log.Printf("✅ %d loterie(s) restaurée(s) depuis la sauvegarde.", restored)

	fmt.Println("🤖 Bot en ligne ! Appuyez sur CTRL+C pour quitter.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
