package memory

import (
	"context"

	"lovepet/internal/domain/event"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, petID string, events []event.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events[petID] = append(r.store.events[petID], events...)
	return nil
}

func (r EventRepo) ListByPetID(_ context.Context, petID string, limit int) ([]event.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	all := r.store.events[petID]
	out := make([]event.Event, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
