package memory

import (
	"sync"

	"lovepet/internal/app/ports"
	"lovepet/internal/domain/event"
)

type entityKey struct {
	petID string
	kind  ports.EntityKind
}

// Store keeps every record in process memory. txMu serializes transactions;
// mu guards the maps for callers reading outside one.
type Store struct {
	txMu     sync.Mutex
	mu       sync.RWMutex
	entities map[entityKey][]byte
	events   map[string][]event.Event
}

func NewStore() *Store {
	return &Store{
		entities: make(map[entityKey][]byte),
		events:   make(map[string][]event.Event),
	}
}

// Seed writes a raw record, bypassing the use cases. Tests use it to plant
// malformed data.
func (s *Store) Seed(petID string, kind ports.EntityKind, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities[entityKey{petID: petID, kind: kind}] = append([]byte(nil), payload...)
}
