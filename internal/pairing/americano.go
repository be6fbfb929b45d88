package pairing

import "github.com/alvarobarcelona/PadelUp-sub000/internal/domain"

// Americano schedules partners with the circle method: one player stays
// fixed, the rest rotate one position per round. Over n-1 rounds every
// player partners every other player exactly once.
type Americano struct{}

var _ Strategy = Americano{}

// GenerateRound requires the active roster size to be a positive multiple
// of four; anything else yields no matches.
func (Americano) GenerateRound(round int, roster []domain.Participant, _ []domain.Match) []domain.Match {
	if round < 1 {
		return nil
	}
	players := activePlayers(roster)
	n := len(players)
	if n == 0 || n%4 != 0 {
		return nil
	}

	// Canonical order is by persistent identifier, not arrival order:
	// the last player in that order is the fixed point of the circle.
	sortCanonical(players)
	fixed := players[n-1]
	moving := players[:n-1]

	shift := (round - 1) % (n - 1)
	rotated := make([]domain.PlayerRef, n-1)
	for i := range moving {
		rotated[i] = moving[(i+shift)%(n-1)]
	}

	pairs := make([][2]domain.PlayerRef, 0, n/2)
	pairs = append(pairs, [2]domain.PlayerRef{fixed, rotated[0]})
	for i, j := 1, len(rotated)-1; i < j; i, j = i+1, j-1 {
		pairs = append(pairs, [2]domain.PlayerRef{rotated[i], rotated[j]})
	}

	return buildMatches(round, pairs)
}
