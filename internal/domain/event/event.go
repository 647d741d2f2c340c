package event

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeActionApplied    = "action_applied"
	TypePhaseAdvanced    = "phase_advanced"
	TypeMemoryFormed     = "memory_formed"
	TypeHabitFormed      = "habit_formed"
	TypeRecipeDiscovered = "recipe_discovered"
	TypeDishRejected     = "dish_rejected"
	TypeItemConsumed     = "item_consumed"
	TypePetReset         = "pet_reset"
)

type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

func New(eventType string, at time.Time, payload map[string]any) Event {
	if payload == nil {
		payload = map[string]any{}
	}
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: at,
		Payload:    payload,
	}
}
