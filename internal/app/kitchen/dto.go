package kitchen

import (
	"lovepet/internal/app/care"
	"lovepet/internal/app/petstate"
	"lovepet/internal/domain/cooking"
)

type CookRequest struct {
	PetID string
	// Ingredients are catalog ids or names; near-miss spellings are accepted.
	Ingredients []string
	Actions     []string
}

type CookResponse struct {
	Dish       cooking.Dish       `json:"dish"`
	Evaluation cooking.Evaluation `json:"evaluation"`
	Reaction   string             `json:"reaction"`
	Recipe     *cooking.Recipe    `json:"recipe,omitempty"`
	NewRecipe  bool               `json:"new_recipe"`
	// Care is set only when the pet ate, since only then does cooking count as care.
	Care  *care.Result  `json:"care,omitempty"`
	State petstate.View `json:"state"`
}

type FeedRequest struct {
	PetID    string
	RecipeID string
}

type FeedResponse struct {
	Item    cooking.Item    `json:"item"`
	Effects cooking.Effects `json:"effects"`
	Care    care.Result     `json:"care"`
	State   petstate.View   `json:"state"`
}

type IngredientsResponse struct {
	Phase       int                  `json:"phase"`
	Limit       int                  `json:"complexity_limit"`
	Ingredients []cooking.Ingredient `json:"ingredients"`
}
