package domain

import (
	"time"

	"github.com/google/uuid"
)

type Format string

const (
	FormatAmericano Format = "americano"
	FormatMexicano  Format = "mexicano"
)

func (f Format) Valid() bool {
	return f == FormatAmericano || f == FormatMexicano
}

// DefaultPointsPerMatch is the usual total of points played per tournament
// match; both team scores normally add up to it.
const DefaultPointsPerMatch = 24

type Tournament struct {
	ID             uuid.UUID
	Name           string
	Format         Format
	PointsPerMatch int
	CreatedAt      time.Time
}

// Participant is a tournament roster entry. Score and MatchesPlayed
// accumulate within this tournament only.
type Participant struct {
	Player        PlayerRef
	Score         int
	MatchesPlayed int
	Active        bool
}
