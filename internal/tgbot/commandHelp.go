package tgbot

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Run(user User, args string) (string, error) {
	for s, command := range c.commands {
		if !command.Visibility().Contains(user.Role) {
			continue
		}
		if args == s {
			return command.Help(), nil
		}
	}
	names := make([]string, 0, len(c.commands))
	for name, command := range c.commands {
		if !command.Visibility().Contains(user.Role) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range names {
		b.WriteString("/")
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("Use /help with a command name for details")
	return b.String(), nil
}

func (c *HelpCommand) Help() string {
	return "Lists available commands"
}

func (c *HelpCommand) Permission() mapset.Set[UserRole] {
	return allRoles()
}

func (c *HelpCommand) Visibility() mapset.Set[UserRole] {
	return allRoles()
}
