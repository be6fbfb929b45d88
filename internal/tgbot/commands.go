package tgbot

import (
	"errors"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

var ErrBadRequest = errors.New("unknown command, try /help")

type Command interface {
	Run(user User, args string) (string, error)
	Help() string
	Permission() mapset.Set[UserRole]
	Visibility() mapset.Set[UserRole]
}

type Commands struct {
	list map[string]Command
}

func NewCommands(ps *service.PlayerService, ts *service.TournamentService) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"top": &TopCommand{
				playerService: ps,
			},
			"info": &InfoCommand{
				playerService: ps,
			},
			"standings": &StandingsCommand{
				tournamentService: ts,
			},
		},
	}
	hc.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(user User, cmd string, args string) (string, error) {
	for s, command := range uc.list {
		if cmd == s {
			if command.Permission().Contains(user.Role) {
				return command.Run(user, args)
			}
		}
	}
	return "", ErrBadRequest
}

func allRoles() mapset.Set[UserRole] {
	return mapset.NewSet[UserRole](RoleAdmin, RoleUser)
}
