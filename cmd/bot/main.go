package main

import (
	"log"
	"os"

	"lotobot/internal/adapters/discord"
	"lotobot/internal/config"
	"lotobot/internal/infrastructure/i18n"
	"lotobot/internal/infrastructure/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	store := storage.NewFileStore(cfg.SaveFile)
	translator := i18n.NewTranslator("fr")

	bot, err := discord.NewBot(cfg, store, translator)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation du bot: %v", err)
	}
	if err := bot.Start(); err != nil {
		log.Printf("❌ Erreur lors du démarrage du bot: %v", err)
		os.Exit(1)
	}
}
