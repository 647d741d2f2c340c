package cooking

import (
	"time"

	"lovepet/internal/domain/chance"
	"lovepet/internal/domain/growth"
)

const mysteryDish = "Mystery Dish"

var namePrefixes = []string{"Delight of", "Cream of", "Purée of", "Soup of", "Mix of"}

type Recipe struct {
	// ID is the dish signature.
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	IngredientIDs []string     `json:"ingredient_ids"`
	Actions       []Action     `json:"actions"`
	Phase         growth.Phase `json:"discovered_at_phase"`
	Quality       int          `json:"quality"`
	DiscoveredAt  time.Time    `json:"discovered_at"`
}

// NameFor invents a dish name from a random prefix and the first two ingredients.
func NameFor(d Dish, src chance.Source) string {
	if len(d.Ingredients) == 0 {
		return mysteryDish
	}
	name := namePrefixes[src.IntN(len(namePrefixes))] + " " + d.Ingredients[0].Name
	if len(d.Ingredients) > 1 {
		name += " with " + d.Ingredients[1].Name
	}
	return name
}

// RecipeBook keeps recipes in discovery order.
type RecipeBook []Recipe

func (b RecipeBook) Find(id string) (Recipe, bool) {
	for _, r := range b {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

// Discover records the dish's recipe unless its signature is already known.
// It returns the recipe that now stands for the dish and whether it is new.
func (b RecipeBook) Discover(d Dish, phase growth.Phase, quality int, src chance.Source, now time.Time) (RecipeBook, Recipe, bool) {
	sig := d.Signature()
	if known, ok := b.Find(sig); ok {
		return b, known, false
	}
	ids := make([]string, 0, len(d.Ingredients))
	for _, ing := range d.Ingredients {
		ids = append(ids, ing.ID)
	}
	recipe := Recipe{
		ID:            sig,
		Name:          NameFor(d, src),
		IngredientIDs: ids,
		Actions:       append([]Action{}, d.History...),
		Phase:         phase,
		Quality:       quality,
		DiscoveredAt:  now,
	}
	out := make(RecipeBook, len(b), len(b)+1)
	copy(out, b)
	return append(out, recipe), recipe, true
}
