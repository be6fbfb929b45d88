package main

import (
	"fmt"
	"os"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/config"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/logger"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/service"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/storage/sqlite"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/tgbot"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	store, err := sqlite.New(log, cfg.Server.SqliteFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Error("closing storage")
		}
	}()

	playerService, err := service.New(store, store, log)
	if err != nil {
		return err
	}
	tournamentService := service.NewTournamentService(store, log)

	if cfg.Server.TgBotEnabled {
		bot, err := tgbot.New(playerService, tournamentService, cfg, log)
		if err != nil {
			return err
		}
		go bot.Run()
		defer bot.Stop()
	}

	server := web.New(playerService, tournamentService, cfg.Server, log)
	return server.Serve()
}
