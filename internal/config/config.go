package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Server struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	SqliteFile   string `toml:"sqlite_file"`
	Debug        bool   `toml:"debug_mode"`
	TgBotEnabled bool   `toml:"tg_bot_enabled"`
}

type TgBot struct {
	TelegramAPIToken string   `toml:"telegram_api_token"`
	Admins           []string `toml:"admins"`
}

type Config struct {
	Server Server
	TgBot  TgBot
}

func New() (Config, error) {
	// A local .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	var cfg Config
	_, err := toml.DecodeFile("configs/server.toml", &cfg.Server)
	if err != nil {
		return Config{}, err
	}
	_, err = toml.DecodeFile("configs/bot.toml", &cfg.TgBot)
	if err != nil {
		return Config{}, err
	}

	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		cfg.TgBot.TelegramAPIToken = token
	}
	if file := os.Getenv("PADELUP_SQLITE_FILE"); file != "" {
		cfg.Server.SqliteFile = file
	}
	return cfg, nil
}
