package elo

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

// ReplayK is the single flat coefficient used when replaying history.
// Live commits use the tiered KFactor; the replay deliberately uses one K
// for all players so both teams exchange the same number of points and a
// reversal is the exact inverse of the replayed update. If a player's tier
// changed since the original match this is an approximation of the
// originally applied delta.
const ReplayK = KStandard

var ErrMatchNotFound = errors.New("match not found in history")

// Game is the minimal view of a confirmed ladder match needed for replay.
type Game struct {
	ID         uuid.UUID
	Team1      [2]uuid.UUID
	Team2      [2]uuid.UUID
	WinnerTeam int
}

// ReplayResult carries the points the target match exchanged (added to each
// winner, subtracted from each loser) and the four players' ratings as they
// stood immediately before it.
type ReplayResult struct {
	Points        int
	RatingsBefore map[uuid.UUID]int
}

// Replay walks the complete chronological match history oldest-first,
// maintaining an in-memory rating table seeded at InitialRating, and stops
// at the target match. The history must be the player-set's full confirmed
// match list or the reconstructed ratings drift.
func Replay(history []Game, target uuid.UUID) (ReplayResult, error) {
	ratings := make(map[uuid.UUID]int)
	get := func(id uuid.UUID) int {
		if r, ok := ratings[id]; ok {
			return r
		}
		return InitialRating
	}

	for _, g := range history {
		avg1 := TeamAverage(get(g.Team1[0]), get(g.Team1[1]))
		avg2 := TeamAverage(get(g.Team2[0]), get(g.Team2[1]))
		winAvg, loseAvg := avg1, avg2
		if g.WinnerTeam == 2 {
			winAvg, loseAvg = avg2, avg1
		}
		points := int(math.Round(ReplayK * (1 - Expected(winAvg, loseAvg))))

		if g.ID == target {
			before := make(map[uuid.UUID]int, 4)
			for _, id := range append(g.Team1[:], g.Team2[:]...) {
				before[id] = get(id)
			}
			return ReplayResult{Points: points, RatingsBefore: before}, nil
		}

		winners, losers := g.Team1, g.Team2
		if g.WinnerTeam == 2 {
			winners, losers = g.Team2, g.Team1
		}
		for _, id := range winners {
			ratings[id] = get(id) + points
		}
		for _, id := range losers {
			ratings[id] = get(id) - points
		}
	}
	return ReplayResult{}, ErrMatchNotFound
}
