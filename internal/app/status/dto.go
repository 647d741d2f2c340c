package status

import (
	"lovepet/internal/domain/growth"
	"lovepet/internal/domain/personality"
)

type Request struct {
	PetID string
}

// Response is the pet's profile page.
type Response struct {
	PetID        string                     `json:"pet_id"`
	Phase        growth.Phase               `json:"phase"`
	PhaseName    string                     `json:"phase_name"`
	Progress     growth.Breakdown           `json:"progress"`
	AgeMinutes   int                        `json:"age_minutes"`
	Energy       int                        `json:"energy"`
	Sleeping     bool                       `json:"sleeping"`
	Emotion      personality.EmotionalState `json:"emotion"`
	Mood         personality.Mood           `json:"mood"`
	Temperament  TraitSummary               `json:"temperament"`
	Personality  TraitSummary               `json:"personality"`
	Profiles     []personality.Profile      `json:"profiles"`
	Primary      *personality.Profile       `json:"primary_profile,omitempty"`
	StrongHabits []HabitSummary             `json:"strong_habits"`
	Recent       personality.Memories       `json:"recent_memories"`
	Influence    float64                    `json:"memory_influence"`
	CareScore    float64                    `json:"care_score"`
	Recipes      int                        `json:"recipe_count"`
}

type TraitSummary struct {
	Values      any      `json:"values"`
	Descriptors []string `json:"descriptors"`
}

type HabitSummary struct {
	Type        personality.HabitType `json:"type"`
	Strength    int                   `json:"strength"`
	Description string                `json:"description"`
}
