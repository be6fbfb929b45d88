package tgbot

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

type StandingsCommand struct {
	tournamentService *service.TournamentService
}

func (c *StandingsCommand) Run(_ User, args string) (string, error) {
	idStr := strings.TrimSpace(args)
	if idStr == "" {
		return "", errors.New(`tournament id must follow the command, e.g. "/standings <id>"`)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return "", errors.New("bad tournament id")
	}
	tournament, err := c.tournamentService.Get(id)
	if err != nil {
		return "", err
	}
	standings, err := c.tournamentService.Standings(id)
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	buf.WriteString(tournament.Name)
	buf.WriteString(" (")
	buf.WriteString(string(tournament.Format))
	buf.WriteString(")\n")
	for i, p := range standings {
		buf.WriteString(strconv.Itoa(i + 1))
		buf.WriteString(". ")
		buf.WriteString(p.Player.Name)
		buf.WriteString(": ")
		buf.WriteString(strconv.Itoa(p.Score))
		buf.WriteString("\n")
	}
	done, err := c.tournamentService.CycleComplete(id)
	if err != nil {
		return "", err
	}
	if done {
		buf.WriteString("Cycle complete")
	}
	return buf.String(), nil
}

func (c *StandingsCommand) Help() string {
	return "Tournament standings. Usage: /standings and a tournament id."
}

func (c *StandingsCommand) Permission() mapset.Set[UserRole] {
	return allRoles()
}

func (c *StandingsCommand) Visibility() mapset.Set[UserRole] {
	return allRoles()
}
