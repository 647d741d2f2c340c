package memory

import (
	"context"
	"slices"

	"lovepet/internal/app/ports"
)

type EntityRepo struct {
	store *Store
}

func NewEntityRepo(store *Store) EntityRepo {
	return EntityRepo{store: store}
}

func (r EntityRepo) Get(_ context.Context, petID string, kind ports.EntityKind) ([]byte, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	payload, ok := r.store.entities[entityKey{petID: petID, kind: kind}]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return append([]byte(nil), payload...), nil
}

func (r EntityRepo) Put(_ context.Context, petID string, kind ports.EntityKind, payload []byte) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.entities[entityKey{petID: petID, kind: kind}] = append([]byte(nil), payload...)
	return nil
}

func (r EntityRepo) PetIDs(_ context.Context) ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var ids []string
	for key := range r.store.entities {
		if !slices.Contains(ids, key.petID) {
			ids = append(ids, key.petID)
		}
	}
	slices.Sort(ids)
	return ids, nil
}
