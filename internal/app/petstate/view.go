package petstate

import (
	"lovepet/internal/domain/cooking"
	"lovepet/internal/domain/growth"
	"lovepet/internal/domain/personality"
)

// View is the JSON shape of a snapshot handed back to callers.
type View struct {
	PetID       string                     `json:"pet_id"`
	Phase       growth.Phase               `json:"phase"`
	PhaseName   string                     `json:"phase_name"`
	Pet         growth.Pet                 `json:"pet"`
	Metrics     growth.Metrics             `json:"metrics"`
	Temperament personality.Temperament    `json:"temperament"`
	Personality personality.Personality    `json:"personality"`
	Emotion     personality.EmotionalState `json:"emotion"`
	Mood        personality.Mood           `json:"mood"`
	Habits      personality.Habits         `json:"habits"`
	Memories    int                        `json:"memory_count"`
	Recipes     int                        `json:"recipe_count"`
	Inventory   cooking.Inventory          `json:"inventory"`
}

func (s Snapshot) View(table growth.Table) View {
	return View{
		PetID:       s.PetID,
		Phase:       s.Pet.Phase,
		PhaseName:   table.Name(s.Pet.Phase),
		Pet:         s.Pet,
		Metrics:     s.Metrics,
		Temperament: s.Temperament,
		Personality: s.Personality,
		Emotion:     s.Emotion,
		Mood:        s.Emotion.Mood(),
		Habits:      s.Habits,
		Memories:    len(s.Memories),
		Recipes:     len(s.Recipes),
		Inventory:   s.Inventory,
	}
}
