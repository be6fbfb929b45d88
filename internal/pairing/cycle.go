package pairing

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/domain"
)

// CycleComplete reports whether a tournament has exhausted its meaningful
// pairings and should offer to finish. Advisory only: the caller decides
// whether to actually stop.
//
// Americano has a fixed bound (n-1 rounds for even n, n for odd).
// Mexicano has no fixed bound; it is complete once the match history shows
// every active participant has partnered every other at least once.
func CycleComplete(format domain.Format, roster []domain.Participant, currentRound int, history []domain.Match) bool {
	players := activePlayers(roster)
	n := len(players)
	if n == 0 {
		return false
	}

	switch format {
	case domain.FormatAmericano:
		maxRounds := n - 1
		if n%2 == 1 {
			maxRounds = n
		}
		return currentRound >= maxRounds
	case domain.FormatMexicano:
		if len(history) == 0 {
			return false
		}
		partners := make(map[string]mapset.Set[string], n)
		record := func(a, b domain.PlayerRef) {
			if partners[a.Key()] == nil {
				partners[a.Key()] = mapset.NewSet[string]()
			}
			partners[a.Key()].Add(b.Key())
		}
		for _, m := range history {
			record(m.Team1[0], m.Team1[1])
			record(m.Team1[1], m.Team1[0])
			record(m.Team2[0], m.Team2[1])
			record(m.Team2[1], m.Team2[0])
		}
		for _, p := range players {
			set := partners[p.Key()]
			if set == nil || set.Cardinality() < n-1 {
				return false
			}
		}
		return true
	}
	return false
}
