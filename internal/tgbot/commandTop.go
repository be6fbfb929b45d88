package tgbot

import (
	"strconv"
	"strings"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

type TopCommand struct {
	playerService *service.PlayerService
}

func (c *TopCommand) Run(_ User, _ string) (string, error) {
	ratings, err := c.playerService.GetRatings()
	if err != nil {
		return "", err
	}
	var buffer strings.Builder
	for i := range ratings {
		if i > 9 {
			break
		}
		buffer.WriteString(strconv.Itoa(ratings[i].RatingRank))
		buffer.WriteString(". ")
		buffer.WriteString(ratings[i].Name)
		buffer.WriteString(" (")
		buffer.WriteString(strconv.Itoa(ratings[i].EloRating))
		buffer.WriteString(")\n")
	}
	if buffer.Len() == 0 {
		return "No rated players yet", nil
	}
	return buffer.String(), nil
}

func (c *TopCommand) Help() string {
	return "Shows the top ten rated players"
}

func (c *TopCommand) Permission() mapset.Set[UserRole] {
	return allRoles()
}

func (c *TopCommand) Visibility() mapset.Set[UserRole] {
	return allRoles()
}
