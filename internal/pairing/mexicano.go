package pairing

import (
	"math/rand"
	"sort"
	"time"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/domain"
)

// Mexicano groups players into skill brackets of four by current
// tournament score and pairs strongest with weakest inside each bracket,
// dodging partnerships that history has already forced twice.
type Mexicano struct {
	rnd *rand.Rand
}

var _ Strategy = (*Mexicano)(nil)

// NewMexicano takes the random source used for the round-1 shuffle so
// tests can pin it; nil gets a time-seeded source.
func NewMexicano(rnd *rand.Rand) *Mexicano {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Mexicano{rnd: rnd}
}

func (s *Mexicano) GenerateRound(round int, roster []domain.Participant, history []domain.Match) []domain.Match {
	if round < 1 {
		return nil
	}
	active := make([]domain.Participant, 0, len(roster))
	for _, p := range roster {
		if p.Active {
			active = append(active, p)
		}
	}
	if len(active) < 4 {
		return nil
	}

	if round == 1 && allScoreless(active) {
		// No standings yet: a uniform shuffle instead of whatever order
		// the roster snapshot happened to arrive in.
		s.rnd.Shuffle(len(active), func(i, j int) {
			active[i], active[j] = active[j], active[i]
		})
	} else {
		sort.SliceStable(active, func(i, j int) bool {
			return active[i].Score > active[j].Score
		})
	}

	counts := partnershipCounts(history)

	// Only full brackets of four play; a trailing remainder sits the
	// round out.
	groups := len(active) / 4
	pairs := make([][2]domain.PlayerRef, 0, groups*2)
	for g := 0; g < groups; g++ {
		bracket := [4]domain.PlayerRef{
			active[g*4].Player,
			active[g*4+1].Player,
			active[g*4+2].Player,
			active[g*4+3].Player,
		}
		team1, team2 := chooseBracketPairing(bracket, counts)
		pairs = append(pairs, team1, team2)
	}
	return buildMatches(round, pairs)
}

func allScoreless(roster []domain.Participant) bool {
	for _, p := range roster {
		if p.Score != 0 {
			return false
		}
	}
	return true
}

// bracketPairings are the candidate team splits for ranked positions
// 0..3 within one bracket. The first is the Mexicano convention (top
// partners bottom, middle pair up) and wins all ties.
var bracketPairings = [][2][2]int{
	{{0, 3}, {1, 2}},
	{{0, 2}, {1, 3}},
	{{0, 1}, {2, 3}},
}

const repeatThreshold = 2

// chooseBracketPairing keeps the default split unless one of its
// partnerships has already been forced repeatThreshold times; then the
// alternative with the strictly lowest summed repetition count wins.
func chooseBracketPairing(bracket [4]domain.PlayerRef, counts map[string]int) ([2]domain.PlayerRef, [2]domain.PlayerRef) {
	cost := func(p [2][2]int) int {
		return counts[pairKey(bracket[p[0][0]], bracket[p[0][1]])] +
			counts[pairKey(bracket[p[1][0]], bracket[p[1][1]])]
	}

	best := bracketPairings[0]
	def := bracketPairings[0]
	defRepeated := counts[pairKey(bracket[def[0][0]], bracket[def[0][1]])] >= repeatThreshold ||
		counts[pairKey(bracket[def[1][0]], bracket[def[1][1]])] >= repeatThreshold
	if defRepeated {
		bestCost := cost(best)
		for _, alt := range bracketPairings[1:] {
			if c := cost(alt); c < bestCost {
				best, bestCost = alt, c
			}
		}
	}

	team1 := [2]domain.PlayerRef{bracket[best[0][0]], bracket[best[0][1]]}
	team2 := [2]domain.PlayerRef{bracket[best[1][0]], bracket[best[1][1]]}
	return team1, team2
}
