package domain

import (
	"time"

	"github.com/google/uuid"
)

type Player struct {
	ID           uuid.UUID
	Name         string
	RegisteredAt time.Time
	EloRating    int
	GamesPlayed  int

	// Display fields, filled by the service when listing ratings.
	RatingRank   int
	RatingChange int
}

// PlayerStats accumulates a player's results against a single opponent.
type PlayerStats struct {
	Player Player
	Wins   int
	Loses  int
}
