package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInvalidMatch = errors.New("invalid match")

// Match is one court of one tournament round: two teams of two.
type Match struct {
	ID           uuid.UUID
	TournamentID uuid.UUID
	Round        int
	Court        int
	Team1        [2]PlayerRef
	Team2        [2]PlayerRef
	ScoreTeam1   int
	ScoreTeam2   int
	Completed    bool
}

func (m Match) Players() [4]PlayerRef {
	return [4]PlayerRef{m.Team1[0], m.Team1[1], m.Team2[0], m.Team2[1]}
}

func (m Match) Validate() error {
	if m.Round < 1 {
		return fmt.Errorf("%w: round %d", ErrInvalidMatch, m.Round)
	}
	if m.Court < 1 {
		return fmt.Errorf("%w: court %d", ErrInvalidMatch, m.Court)
	}
	seen := make(map[string]struct{}, 4)
	for _, p := range m.Players() {
		if p.Name == "" {
			return fmt.Errorf("%w: empty player name", ErrInvalidMatch)
		}
		key := p.Key()
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: player %q appears twice", ErrInvalidMatch, p.Name)
		}
		seen[key] = struct{}{}
	}
	if m.ScoreTeam1 < 0 || m.ScoreTeam2 < 0 {
		return fmt.Errorf("%w: negative score", ErrInvalidMatch)
	}
	return nil
}
