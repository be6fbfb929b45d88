package tgbot

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/domain"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/elo"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

type InfoCommand struct {
	playerService *service.PlayerService
}

func (c *InfoCommand) Run(_ User, args string) (string, error) {
	name := strings.TrimSpace(args)
	if name == "" {
		return "", errors.New(`player name must follow the command, e.g. "/info ana"`)
	}
	player, err := c.playerService.GetByName(name)
	if err != nil {
		return "", err
	}
	// Rank is filled by the ratings listing, not by Get.
	ratings, err := c.playerService.GetRatings()
	if err != nil {
		return "", err
	}
	for _, p := range ratings {
		if p.ID == player.ID {
			player = p
			break
		}
	}
	return printPlayer(player), nil
}

func (c *InfoCommand) Help() string {
	return "Player card. Usage: /info and a player name."
}

func printPlayer(player domain.Player) string {
	var buf strings.Builder
	buf.WriteString("Name: ")
	buf.WriteString(player.Name)
	buf.WriteString("\nRank: ")
	buf.WriteString(prettifyRank(player))
	buf.WriteString("\nRating: ")
	buf.WriteString(strconv.Itoa(player.EloRating))
	buf.WriteString("\nLevel: ")
	buf.WriteString(elo.LevelFor(player.EloRating).Label)
	buf.WriteString("\nGames played: ")
	buf.WriteString(strconv.Itoa(player.GamesPlayed))
	buf.WriteString("\nRegistered: ")
	buf.WriteString(player.RegisteredAt.Format(time.RFC1123))
	return buf.String()
}

func prettifyRank(player domain.Player) string {
	switch player.RatingRank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return strconv.Itoa(player.RatingRank)
}

func (c *InfoCommand) Permission() mapset.Set[UserRole] {
	return allRoles()
}

func (c *InfoCommand) Visibility() mapset.Set[UserRole] {
	return allRoles()
}
