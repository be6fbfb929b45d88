package pairing

import (
	"sort"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/domain"
)

// Strategy generates one round of matches from a roster snapshot.
// Round numbers are 1-indexed. An empty result means the round cannot be
// generated from this roster (wrong size); that is an expected terminal
// state for the caller, not an error.
type Strategy interface {
	GenerateRound(round int, roster []domain.Participant, history []domain.Match) []domain.Match
}

func activePlayers(roster []domain.Participant) []domain.PlayerRef {
	players := make([]domain.PlayerRef, 0, len(roster))
	for _, p := range roster {
		if p.Active {
			players = append(players, p.Player)
		}
	}
	return players
}

// pairKey is symmetric: pairKey(a,b) == pairKey(b,a).
func pairKey(a, b domain.PlayerRef) string {
	ka, kb := a.Key(), b.Key()
	if ka > kb {
		ka, kb = kb, ka
	}
	return ka + "|" + kb
}

// partnershipCounts tallies how many times each unordered pair has been
// scheduled as partners across the whole tournament history. Keys are
// display-name based because guests have no persistent id.
func partnershipCounts(history []domain.Match) map[string]int {
	counts := make(map[string]int)
	for _, m := range history {
		counts[pairKey(m.Team1[0], m.Team1[1])]++
		counts[pairKey(m.Team2[0], m.Team2[1])]++
	}
	return counts
}

// buildMatches groups consecutive partner pairs two at a time onto courts,
// in pairing generation order.
func buildMatches(round int, pairs [][2]domain.PlayerRef) []domain.Match {
	matches := make([]domain.Match, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		matches = append(matches, domain.Match{
			Round: round,
			Court: i/2 + 1,
			Team1: pairs[i],
			Team2: pairs[i+1],
		})
	}
	return matches
}

func sortCanonical(players []domain.PlayerRef) {
	sort.Slice(players, func(i, j int) bool {
		return players[i].SortKey() < players[j].SortKey()
	})
}
