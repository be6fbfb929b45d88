package pairing

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/domain"
)

func scoredRoster(scores ...int) []domain.Participant {
	roster := makeRoster(len(scores))
	for i := range roster {
		roster[i].Score = scores[i]
	}
	return roster
}

func TestMexicanoBrackets(t *testing.T) {
	roster := scoredRoster(80, 70, 60, 50, 40, 30, 20, 10)
	matches := NewMexicano(nil).GenerateRound(2, roster, nil)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}

	// Court 1 is the top bracket with the 0-3/1-2 split.
	top := matches[0]
	if top.Court != 1 {
		t.Errorf("top bracket on court %d, want 1", top.Court)
	}
	if top.Team1[0].Name != "P1" || top.Team1[1].Name != "P4" {
		t.Errorf("team 1 = %s/%s, want P1/P4", top.Team1[0].Name, top.Team1[1].Name)
	}
	if top.Team2[0].Name != "P2" || top.Team2[1].Name != "P3" {
		t.Errorf("team 2 = %s/%s, want P2/P3", top.Team2[0].Name, top.Team2[1].Name)
	}

	bottom := matches[1]
	if bottom.Team1[0].Name != "P5" || bottom.Team1[1].Name != "P8" {
		t.Errorf("team 1 = %s/%s, want P5/P8", bottom.Team1[0].Name, bottom.Team1[1].Name)
	}
}

func TestMexicanoBracketsFollowScores(t *testing.T) {
	// Same players, reshuffled standings: brackets must follow score, not
	// roster order.
	roster := scoredRoster(10, 80, 30, 60, 70, 20, 50, 40)
	matches := NewMexicano(nil).GenerateRound(2, roster, nil)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	minTop := 100
	maxBottom := -1
	for _, p := range matches[0].Players() {
		score := scoreOf(t, roster, p.Name)
		if score < minTop {
			minTop = score
		}
	}
	for _, p := range matches[1].Players() {
		score := scoreOf(t, roster, p.Name)
		if score > maxBottom {
			maxBottom = score
		}
	}
	if minTop <= maxBottom {
		t.Errorf("court 1 minimum score %d not above court 2 maximum %d", minTop, maxBottom)
	}
}

func scoreOf(t *testing.T, roster []domain.Participant, name string) int {
	t.Helper()
	for _, p := range roster {
		if p.Player.Name == name {
			return p.Score
		}
	}
	t.Fatalf("unknown player %s", name)
	return 0
}

func TestMexicanoRoundOneShuffle(t *testing.T) {
	roster := makeRoster(8)

	a := NewMexicano(rand.New(rand.NewSource(7))).GenerateRound(1, roster, nil)
	b := NewMexicano(rand.New(rand.NewSource(7))).GenerateRound(1, roster, nil)
	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("got %d and %d matches, want 2 each", len(a), len(b))
	}
	for i := range a {
		if a[i].Players() != b[i].Players() {
			t.Fatalf("same seed produced different round 1 pairings")
		}
	}

	seen := make(map[string]struct{})
	for _, m := range a {
		for _, p := range m.Players() {
			seen[p.Key()] = struct{}{}
		}
	}
	if len(seen) != 8 {
		t.Errorf("round 1 covers %d players, want 8", len(seen))
	}
}

func TestMexicanoNoShuffleOnceScored(t *testing.T) {
	// Round 1 with standings already present (restarted tournament) must
	// sort, not shuffle.
	roster := scoredRoster(10, 20, 30, 40)
	matches := NewMexicano(rand.New(rand.NewSource(1))).GenerateRound(1, roster, nil)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Team1[0].Name != "P4" || matches[0].Team1[1].Name != "P1" {
		t.Errorf("team 1 = %s/%s, want P4/P1",
			matches[0].Team1[0].Name, matches[0].Team1[1].Name)
	}
}

func TestMexicanoRemainderDropped(t *testing.T) {
	roster := scoredRoster(90, 80, 70, 60, 50, 40, 30, 20, 10)
	matches := NewMexicano(nil).GenerateRound(3, roster, nil)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	for _, m := range matches {
		for _, p := range m.Players() {
			if p.Name == "P9" {
				t.Errorf("lowest-ranked remainder P9 was scheduled")
			}
		}
	}
}

func TestMexicanoTooFew(t *testing.T) {
	if got := NewMexicano(nil).GenerateRound(1, makeRoster(3), nil); len(got) != 0 {
		t.Errorf("GenerateRound() = %d matches, want none", len(got))
	}
}

func partnered(a, b domain.PlayerRef) domain.Match {
	// Filler opponents so history matches validate; only the Team1
	// partnership matters for the counts under test.
	return domain.Match{
		Round: 1, Court: 1,
		Team1: [2]domain.PlayerRef{a, b},
		Team2: [2]domain.PlayerRef{
			{Name: "filler one"},
			{Name: "filler two"},
		},
	}
}

func TestMexicanoRepetitionAvoidance(t *testing.T) {
	roster := scoredRoster(40, 30, 20, 10)
	p := func(i int) domain.PlayerRef { return roster[i].Player }

	t.Run("default below threshold", func(t *testing.T) {
		history := []domain.Match{partnered(p(0), p(3))}
		matches := NewMexicano(nil).GenerateRound(2, roster, history)
		if len(matches) != 1 {
			t.Fatalf("got %d matches, want 1", len(matches))
		}
		if matches[0].Team1 != [2]domain.PlayerRef{p(0), p(3)} {
			t.Errorf("one prior partnership must keep the default 0-3 split")
		}
	})

	t.Run("repeated default yields alternative", func(t *testing.T) {
		history := []domain.Match{
			partnered(p(0), p(3)), partnered(p(0), p(3)),
			partnered(p(1), p(2)), partnered(p(1), p(2)),
		}
		matches := NewMexicano(nil).GenerateRound(2, roster, history)
		if len(matches) != 1 {
			t.Fatalf("got %d matches, want 1", len(matches))
		}
		// Both alternatives cost 0; the first considered (0-2/1-3) wins.
		if matches[0].Team1 != [2]domain.PlayerRef{p(0), p(2)} {
			t.Errorf("team 1 = %v, want 0-2 split", matches[0].Team1)
		}
		if matches[0].Team2 != [2]domain.PlayerRef{p(1), p(3)} {
			t.Errorf("team 2 = %v, want 1-3 split", matches[0].Team2)
		}
	})

	t.Run("ties keep the default", func(t *testing.T) {
		// Every split has been used twice: no alternative strictly
		// improves, so the default stands.
		var history []domain.Match
		for _, pair := range [][2]int{{0, 3}, {1, 2}, {0, 2}, {1, 3}, {0, 1}, {2, 3}} {
			history = append(history,
				partnered(p(pair[0]), p(pair[1])),
				partnered(p(pair[0]), p(pair[1])),
			)
		}
		matches := NewMexicano(nil).GenerateRound(2, roster, history)
		if len(matches) != 1 {
			t.Fatalf("got %d matches, want 1", len(matches))
		}
		if matches[0].Team1 != [2]domain.PlayerRef{p(0), p(3)} {
			t.Errorf("team 1 = %v, want default 0-3 split", matches[0].Team1)
		}
	})

	t.Run("least repeated alternative wins", func(t *testing.T) {
		history := []domain.Match{
			partnered(p(0), p(3)), partnered(p(0), p(3)),
			partnered(p(0), p(2)), // makes the 0-2/1-3 split cost 1
		}
		matches := NewMexicano(nil).GenerateRound(2, roster, history)
		if len(matches) != 1 {
			t.Fatalf("got %d matches, want 1", len(matches))
		}
		if matches[0].Team1 != [2]domain.PlayerRef{p(0), p(1)} {
			t.Errorf("team 1 = %v, want 0-1 split", matches[0].Team1)
		}
		if matches[0].Team2 != [2]domain.PlayerRef{p(2), p(3)} {
			t.Errorf("team 2 = %v, want 2-3 split", matches[0].Team2)
		}
	})
}

func TestPartnershipCountsSymmetric(t *testing.T) {
	a := domain.PlayerRef{Name: "Ana"}
	b := domain.PlayerRef{Name: "Bea"}
	if pairKey(a, b) != pairKey(b, a) {
		t.Errorf("pairKey not symmetric: %q vs %q", pairKey(a, b), pairKey(b, a))
	}
	counts := partnershipCounts([]domain.Match{partnered(a, b), partnered(b, a)})
	if counts[pairKey(a, b)] != 2 {
		t.Errorf("count = %d, want 2", counts[pairKey(a, b)])
	}
}

func TestMexicanoCourtOrderMatchesBrackets(t *testing.T) {
	for _, n := range []int{8, 12, 16} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			scores := make([]int, n)
			for i := range scores {
				scores[i] = (n - i) * 10
			}
			matches := NewMexicano(nil).GenerateRound(2, scoredRoster(scores...), nil)
			if len(matches) != n/4 {
				t.Fatalf("got %d matches, want %d", len(matches), n/4)
			}
			for i, m := range matches {
				if m.Court != i+1 {
					t.Errorf("bracket %d on court %d", i, m.Court)
				}
			}
		})
	}
}
