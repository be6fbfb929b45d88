package elo

import "math"

type Points float64

const (
	Win  Points = 1
	Lose Points = 0
)

// InitialRating is assigned to every player on registration and assumed for
// unknown players during history replay.
const InitialRating = 1150

// K-factor tiers, selected from the player's lifetime games played before
// the match being rated.
const (
	KPlacement = 48
	KStandard  = 32
	KStable    = 24

	placementGames = 10
	stableGames    = 30
)

// Expected returns the logistic Elo expectation for a player (or team)
// rated ra against rb. Bounded in (0,1), Expected(a,b)+Expected(b,a) == 1.
func Expected(ra, rb int) float64 {
	return 1.0 / (1.0 + math.Pow(10, float64(rb-ra)/400.0))
}

// KFactor picks the coefficient tier by lifetime games played so far:
// placement (<10), standard (10..29), stable (>=30). Never cache the
// result, the tier can change between matches.
func KFactor(gamesPlayed int) int {
	switch {
	case gamesPlayed < placementGames:
		return KPlacement
	case gamesPlayed < stableGames:
		return KStandard
	default:
		return KStable
	}
}

// TeamAverage is a team's effective rating: the mean of its members,
// rounded to the nearest integer.
func TeamAverage(r1, r2 int) int {
	return int(math.Round(float64(r1+r2) / 2.0))
}

// Calculate returns a player's new rating after a team match.
// own and opp are the team-average ratings, k the player's own coefficient,
// s the shared team result.
func Calculate(rating, own, opp, k int, s Points) int {
	return int(math.Round(float64(rating) + float64(k)*(float64(s)-Expected(own, opp))))
}

// PlayerRating is a player's state going into a match.
type PlayerRating struct {
	Rating      int
	GamesPlayed int
}

// ComputeNewRatings rates a full 2v2 match. Teammates share the team result
// and expectation but each applies their own K tier, so their deltas can
// differ. winnerTeam is 1 or 2.
func ComputeNewRatings(team1, team2 [2]PlayerRating, winnerTeam int) (new1, new2 [2]int) {
	avg1 := TeamAverage(team1[0].Rating, team1[1].Rating)
	avg2 := TeamAverage(team2[0].Rating, team2[1].Rating)

	s1, s2 := Win, Lose
	if winnerTeam == 2 {
		s1, s2 = Lose, Win
	}
	for i, p := range team1 {
		new1[i] = Calculate(p.Rating, avg1, avg2, KFactor(p.GamesPlayed), s1)
	}
	for i, p := range team2 {
		new2[i] = Calculate(p.Rating, avg2, avg1, KFactor(p.GamesPlayed), s2)
	}
	return new1, new2
}
