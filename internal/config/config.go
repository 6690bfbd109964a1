package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Token       string
	AdminRoleID string
	GuildID     string
	SaveFile    string
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{
		Token:       os.Getenv("DISCORD_TOKEN"),
		AdminRoleID: os.Getenv("ROLE_ID"),
		GuildID:     os.Getenv("GUILD_ID"),
		SaveFile:    os.Getenv("SAVE_FILE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: DISCORD_TOKEN est requis et ne peut pas être vide")
	}

	if strings.TrimSpace(c.AdminRoleID) == "" {
		return fmt.Errorf("config: ROLE_ID est requis et ne peut pas être vide")
	}

	for _, r := range c.AdminRoleID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: ROLE_ID doit être un ID de rôle Discord (chiffres uniquement)")
		}
	}

	if strings.TrimSpace(c.SaveFile) == "" {
		// Valeur par défaut: fichier de sauvegarde à côté du binaire.
		c.SaveFile = "lotteries.json"
	}

	return nil
}
