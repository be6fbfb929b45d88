package mem

import (
	"sync"

	"github.com/alvarobarcelona/PadelUp-sub000/internal/domain"
	"github.com/alvarobarcelona/PadelUp-sub000/internal/normalize"
)

// Cache keeps the current player set indexed by normalized name for
// name-based lookups (bot commands, match entry by name).
type Cache struct {
	mu      sync.RWMutex
	players map[string]domain.Player
}

func New() *Cache {
	return &Cache{
		players: make(map[string]domain.Player),
	}
}

func (c *Cache) Update(players []domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.players = make(map[string]domain.Player, len(players))
	for i := range players {
		c.players[normalize.Name(players[i].Name)] = players[i]
	}
}

func (c *Cache) GetPlayerByName(name string) (domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	player, ok := c.players[normalize.Name(name)]
	return player, ok
}
