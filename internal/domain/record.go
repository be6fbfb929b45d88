package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	StatusPending   MatchStatus = "pending"
	StatusConfirmed MatchStatus = "confirmed"
	StatusRejected  MatchStatus = "rejected"
)

// SetScore is one set of a ladder match.
type SetScore struct {
	Team1 int `json:"team1"`
	Team2 int `json:"team2"`
}

// MatchRecord is a ladder (rated) match between two registered pairs.
// It is immutable once created except for the status transition; the
// EloSnapshot holds the rating each player reaches if the record is
// confirmed, computed at creation time.
type MatchRecord struct {
	ID          uuid.UUID
	Team1       [2]uuid.UUID
	Team2       [2]uuid.UUID
	Sets        []SetScore
	WinnerTeam  int
	Status      MatchStatus
	EloSnapshot map[uuid.UUID]int
	CreatedAt   time.Time
}

func (m MatchRecord) PlayerIDs() [4]uuid.UUID {
	return [4]uuid.UUID{m.Team1[0], m.Team1[1], m.Team2[0], m.Team2[1]}
}

func (m MatchRecord) Winners() [2]uuid.UUID {
	if m.WinnerTeam == 1 {
		return m.Team1
	}
	return m.Team2
}

func (m MatchRecord) Losers() [2]uuid.UUID {
	if m.WinnerTeam == 1 {
		return m.Team2
	}
	return m.Team1
}

func (m MatchRecord) Validate() error {
	if m.WinnerTeam != 1 && m.WinnerTeam != 2 {
		return fmt.Errorf("%w: winner team %d", ErrInvalidMatch, m.WinnerTeam)
	}
	seen := make(map[uuid.UUID]struct{}, 4)
	for _, id := range m.PlayerIDs() {
		if id == uuid.Nil {
			return fmt.Errorf("%w: missing player", ErrInvalidMatch)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: player %s appears twice", ErrInvalidMatch, id)
		}
		seen[id] = struct{}{}
	}
	for _, set := range m.Sets {
		if set.Team1 < 0 || set.Team2 < 0 {
			return fmt.Errorf("%w: negative set score", ErrInvalidMatch)
		}
	}
	return nil
}
