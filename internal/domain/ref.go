package domain

import (
	"github.com/alvarobarcelona/PadelUp-sub000/internal/normalize"

	"github.com/google/uuid"
)

// PlayerRef identifies a player slot in a tournament. Registered players
// carry their persistent id; guests have only a display name (unique within
// the tournament), so all history bookkeeping is keyed by Key().
type PlayerRef struct {
	ID   uuid.UUID
	Name string
}

func (r PlayerRef) IsGuest() bool {
	return r.ID == uuid.Nil
}

// Key is the partnership-history key: guests have no id, so the normalized
// display name serves for everyone.
func (r PlayerRef) Key() string {
	return normalize.Name(r.Name)
}

// SortKey fixes the canonical roster ordering used by the Americano
// rotation. Registered players order by id; guests sort after them by name.
func (r PlayerRef) SortKey() string {
	if r.IsGuest() {
		return "~guest:" + normalize.Name(r.Name)
	}
	return r.ID.String()
}
