package petstate

import (
	"time"

	"lovepet/internal/domain/chance"
	"lovepet/internal/domain/cooking"
	"lovepet/internal/domain/growth"
	"lovepet/internal/domain/personality"
)

// Snapshot is every persisted record of one pet.
type Snapshot struct {
	PetID       string
	Pet         growth.Pet
	Metrics     growth.Metrics
	Temperament personality.Temperament
	Personality personality.Personality
	Emotion     personality.EmotionalState
	Habits      personality.Habits
	Memories    personality.Memories
	Recipes     cooking.RecipeBook
	Inventory   cooking.Inventory
	Clock       personality.DecayClock
}

// Newborn is the state of a pet created at now. Only the temperament is random.
func Newborn(petID string, src chance.Source, now time.Time) Snapshot {
	if src == nil {
		src = chance.New(0)
	}
	snap := blank(petID, now)
	snap.Temperament = personality.NewTemperament(src)
	return snap
}

func blank(petID string, now time.Time) Snapshot {
	return Snapshot{
		PetID:       petID,
		Pet:         growth.NewPet(petID, now),
		Metrics:     growth.NewMetrics(),
		Personality: personality.NewPersonality(),
		Emotion:     personality.NewEmotionalState(),
		Habits:      personality.Habits{},
		Memories:    personality.Memories{},
		Recipes:     cooking.RecipeBook{},
		Inventory:   cooking.Inventory{},
		Clock:       personality.NewDecayClock(now),
	}
}
