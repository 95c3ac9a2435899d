package store

import (
	"sync"

	"github.com/ajuarez99/ballknowers/internal/domain/players"
)

// PlayerStore keeps a thread-safe id → player directory in memory.
// It satisfies matching.NameLookup.
type PlayerStore struct {
	mu      sync.RWMutex
	players map[string]players.Player
}

// NewPlayerStore constructs an empty PlayerStore.
func NewPlayerStore() *PlayerStore {
	return &PlayerStore{
		players: make(map[string]players.Player),
	}
}

// SetPlayers replaces the directory. Players without an id and full name are ignored.
func (s *PlayerStore) SetPlayers(list []players.Player) {
	next := make(map[string]players.Player, len(list))
	for _, p := range list {
		if p.HasName() {
			next[p.ID] = p
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = next
}

// Player retrieves a player by id.
func (s *PlayerStore) Player(id string) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	return p, ok
}

// Name returns the full name for id.
func (s *PlayerStore) Name(id string) (string, bool) {
	p, ok := s.Player(id)
	if !ok {
		return "", false
	}
	return p.FullName, true
}

// Len returns the number of named players held.
func (s *PlayerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}
