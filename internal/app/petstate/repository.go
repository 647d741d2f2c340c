// Package petstate loads and saves a pet's records through the entity store.
// Reads are best-effort: a record that is missing, unreadable or out of range
// is replaced by its default so one bad record never blocks the pet.
package petstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"lovepet/internal/app/ports"
	"lovepet/internal/domain/chance"
	"lovepet/internal/domain/growth"
	"lovepet/internal/logging"
)

type Repository struct {
	Store  ports.EntityStore
	Random chance.Source
	Logger *slog.Logger
}

type validator interface {
	Valid() bool
}

// Load reads every record of petID, filling defaults for whatever is missing.
func (r Repository) Load(ctx context.Context, petID string, now time.Time) Snapshot {
	snap := blank(petID, now)

	readInto(ctx, r, petID, ports.KindPet, &snap.Pet)
	readInto(ctx, r, petID, ports.KindMetrics, &snap.Metrics)
	if !readInto(ctx, r, petID, ports.KindTemperament, &snap.Temperament) {
		// A temperament is drawn once; Save makes it permanent.
		snap.Temperament = Newborn(petID, r.Random, now).Temperament
		logging.OrDefault(r.Logger).Info("temperament drawn", "pet_id", petID, "temperament", snap.Temperament)
	}
	readInto(ctx, r, petID, ports.KindPersonality, &snap.Personality)
	readInto(ctx, r, petID, ports.KindEmotionalState, &snap.Emotion)
	readInto(ctx, r, petID, ports.KindHabits, &snap.Habits)
	readInto(ctx, r, petID, ports.KindMemories, &snap.Memories)
	readInto(ctx, r, petID, ports.KindRecipeBook, &snap.Recipes)
	readInto(ctx, r, petID, ports.KindInventory, &snap.Inventory)
	readInto(ctx, r, petID, ports.KindDecayClock, &snap.Clock)

	snap.Pet.ID = petID
	if snap.Metrics.Activities == nil {
		snap.Metrics.Activities = growth.NewMetrics().Activities
	}
	return snap
}

// readInto decodes the stored record over dst, leaving dst untouched unless
// the record is present, well formed and in range. It reports whether dst was set.
func readInto[T any](ctx context.Context, r Repository, petID string, kind ports.EntityKind, dst *T) bool {
	logger := logging.OrDefault(r.Logger)
	raw, err := r.Store.Get(ctx, petID, kind)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			logger.Debug("pet record missing, using default", "pet_id", petID, "kind", kind)
		} else {
			logger.Warn("pet record unreadable, using default", "pet_id", petID, "kind", kind, "err", err)
		}
		return false
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warn("pet record malformed, using default", "pet_id", petID, "kind", kind, "err", err)
		return false
	}
	if check, ok := any(v).(validator); ok && !check.Valid() {
		logger.Warn("pet record out of range, using default", "pet_id", petID, "kind", kind)
		return false
	}
	*dst = v
	return true
}

// Save writes every record of the snapshot. The first failing write is returned.
func (r Repository) Save(ctx context.Context, snap Snapshot) error {
	records := []struct {
		kind  ports.EntityKind
		value any
	}{
		{ports.KindPet, snap.Pet},
		{ports.KindMetrics, snap.Metrics},
		{ports.KindTemperament, snap.Temperament},
		{ports.KindPersonality, snap.Personality},
		{ports.KindEmotionalState, snap.Emotion},
		{ports.KindHabits, snap.Habits},
		{ports.KindMemories, snap.Memories},
		{ports.KindRecipeBook, snap.Recipes},
		{ports.KindInventory, snap.Inventory},
		{ports.KindDecayClock, snap.Clock},
	}
	for _, rec := range records {
		payload, err := json.Marshal(rec.value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", rec.kind, err)
		}
		if err := r.Store.Put(ctx, snap.PetID, rec.kind, payload); err != nil {
			return fmt.Errorf("save %s: %w", rec.kind, err)
		}
	}
	return nil
}
