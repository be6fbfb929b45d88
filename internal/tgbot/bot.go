package tgbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/config"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Bot answers rating and tournament queries in a telegram chat.
type Bot struct {
	bot *tgbotapi.BotAPI
	log *logrus.Entry

	admins map[string]struct{}

	// cancel func to stop the bot
	cancel func()

	commands *Commands
}

func New(ps *service.PlayerService, ts *service.TournamentService, cfg config.Config, log *logrus.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.TelegramAPIToken)
	if err != nil {
		return nil, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}
	bot.Debug = cfg.Server.Debug
	if _, err := bot.GetMe(); err != nil {
		return nil, err
	}

	admins := make(map[string]struct{}, len(cfg.TgBot.Admins))
	for _, name := range cfg.TgBot.Admins {
		admins[strings.ToLower(name)] = struct{}{}
	}

	b := Bot{
		bot:      bot,
		log:      log.WithField("from", "tg_bot"),
		admins:   admins,
		commands: NewCommands(ps, ts),
	}
	return &b, nil
}

func (b *Bot) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			b.handleMessage(update)
		}
	}
}

func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
}

func (b *Bot) handleMessage(update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}
	tgUser := update.SentFrom()
	if tgUser == nil {
		return
	}
	log := b.log.WithFields(map[string]interface{}{
		"user_id": tgUser.ID,
		"text":    update.Message.Text,
	})

	user := User{
		ID:       tgUser.ID,
		Username: tgUser.UserName,
		Role:     RoleUser,
	}
	if _, ok := b.admins[strings.ToLower(tgUser.UserName)]; ok {
		user.Role = RoleAdmin
	}

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	text, err := b.commands.RunCommand(user, update.Message.Command(), update.Message.CommandArguments())
	if err != nil {
		msg.Text = err.Error()
	} else {
		msg.Text = text
	}
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
	}
}
