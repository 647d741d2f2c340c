package ports

import (
	"context"

	"lovepet/internal/domain/event"
)

// EntityKind names one persisted record per pet.
type EntityKind string

const (
	KindPet            EntityKind = "pet"
	KindMetrics        EntityKind = "metrics"
	KindTemperament    EntityKind = "temperament"
	KindPersonality    EntityKind = "personality"
	KindEmotionalState EntityKind = "emotional_state"
	KindHabits         EntityKind = "habits"
	KindMemories       EntityKind = "memories"
	KindRecipeBook     EntityKind = "recipe_book"
	KindInventory      EntityKind = "inventory"
	KindDecayClock     EntityKind = "decay_clock"
)

func EntityKinds() []EntityKind {
	return []EntityKind{
		KindPet, KindMetrics, KindTemperament, KindPersonality, KindEmotionalState,
		KindHabits, KindMemories, KindRecipeBook, KindInventory, KindDecayClock,
	}
}

// EntityStore keeps one JSON document per pet and kind. Get returns
// ErrNotFound for a record that was never written.
type EntityStore interface {
	Get(ctx context.Context, petID string, kind EntityKind) ([]byte, error)
	Put(ctx context.Context, petID string, kind EntityKind, payload []byte) error
}

// PetLister enumerates the pets with at least one stored record.
type PetLister interface {
	PetIDs(ctx context.Context) ([]string, error)
}

type EventRepository interface {
	Append(ctx context.Context, petID string, events []event.Event) error
	// ListByPetID returns newest first. limit <= 0 means no limit.
	ListByPetID(ctx context.Context, petID string, limit int) ([]event.Event, error)
}
