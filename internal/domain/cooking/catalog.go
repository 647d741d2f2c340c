package cooking

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"lovepet/internal/domain/growth"
)

type Group string

const (
	GroupFruit     Group = "fruit"
	GroupVegetable Group = "vegetable"
	GroupProtein   Group = "protein"
	GroupLiquid    Group = "liquid"
	GroupExtra     Group = "extra"
)

type BaseTexture string

const (
	BaseSolid  BaseTexture = "solid"
	BaseSoft   BaseTexture = "soft"
	BaseLiquid BaseTexture = "liquid"
)

type Ingredient struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Group       Group          `json:"group"`
	BaseTexture BaseTexture    `json:"base_texture"`
	Complexity  int            `json:"complexity"`
	Phases      []growth.Phase `json:"accepted_phases"`
}

func (i Ingredient) AcceptedIn(p growth.Phase) bool {
	return slices.Contains(i.Phases, p)
}

// from returns every phase from p up to the teen phase.
func from(p growth.Phase) []growth.Phase {
	var out []growth.Phase
	for ; p <= growth.FinalPhase; p++ {
		out = append(out, p)
	}
	return out
}

var catalog = []Ingredient{
	{ID: "milk", Name: "Milk", Group: GroupLiquid, BaseTexture: BaseLiquid, Complexity: 1, Phases: from(1)},
	{ID: "water", Name: "Water", Group: GroupLiquid, BaseTexture: BaseLiquid, Complexity: 1, Phases: from(1)},
	{ID: "broth", Name: "Broth", Group: GroupLiquid, BaseTexture: BaseLiquid, Complexity: 2, Phases: from(2)},
	{ID: "yogurt", Name: "Yogurt", Group: GroupLiquid, BaseTexture: BaseSoft, Complexity: 2, Phases: from(1)},

	{ID: "banana", Name: "Banana", Group: GroupFruit, BaseTexture: BaseSoft, Complexity: 1, Phases: from(1)},
	{ID: "apple", Name: "Apple", Group: GroupFruit, BaseTexture: BaseSolid, Complexity: 2, Phases: from(1)},
	{ID: "strawberry", Name: "Strawberry", Group: GroupFruit, BaseTexture: BaseSoft, Complexity: 2, Phases: from(2)},
	{ID: "mango", Name: "Mango", Group: GroupFruit, BaseTexture: BaseSoft, Complexity: 2, Phases: from(2)},
	{ID: "pear", Name: "Pear", Group: GroupFruit, BaseTexture: BaseSoft, Complexity: 1, Phases: from(1)},

	{ID: "carrot", Name: "Carrot", Group: GroupVegetable, BaseTexture: BaseSolid, Complexity: 2, Phases: from(1)},
	{ID: "potato", Name: "Potato", Group: GroupVegetable, BaseTexture: BaseSolid, Complexity: 2, Phases: from(2)},
	{ID: "pumpkin", Name: "Pumpkin", Group: GroupVegetable, BaseTexture: BaseSolid, Complexity: 2, Phases: from(1)},
	{ID: "broccoli", Name: "Broccoli", Group: GroupVegetable, BaseTexture: BaseSolid, Complexity: 3, Phases: from(3)},
	{ID: "corn", Name: "Corn", Group: GroupVegetable, BaseTexture: BaseSolid, Complexity: 2, Phases: from(2)},
	{ID: "peas", Name: "Peas", Group: GroupVegetable, BaseTexture: BaseSoft, Complexity: 2, Phases: from(2)},

	{ID: "chicken", Name: "Chicken", Group: GroupProtein, BaseTexture: BaseSolid, Complexity: 3, Phases: from(2)},
	{ID: "fish", Name: "Fish", Group: GroupProtein, BaseTexture: BaseSoft, Complexity: 3, Phases: from(2)},
	{ID: "egg", Name: "Egg", Group: GroupProtein, BaseTexture: BaseLiquid, Complexity: 2, Phases: from(3)},
	{ID: "meat", Name: "Meat", Group: GroupProtein, BaseTexture: BaseSolid, Complexity: 4, Phases: from(4)},
	{ID: "cheese", Name: "Cheese", Group: GroupProtein, BaseTexture: BaseSoft, Complexity: 2, Phases: from(2)},

	{ID: "honey", Name: "Honey", Group: GroupExtra, BaseTexture: BaseLiquid, Complexity: 1, Phases: from(1)},
	{ID: "oats", Name: "Oats", Group: GroupExtra, BaseTexture: BaseSolid, Complexity: 1, Phases: from(1)},
	{ID: "rice", Name: "Rice", Group: GroupExtra, BaseTexture: BaseSolid, Complexity: 2, Phases: from(3)},
	{ID: "pasta", Name: "Pasta", Group: GroupExtra, BaseTexture: BaseSolid, Complexity: 3, Phases: from(4)},
	{ID: "herbs", Name: "Herbs", Group: GroupExtra, BaseTexture: BaseSolid, Complexity: 2, Phases: from(3)},
	{ID: "salt", Name: "Salt", Group: GroupExtra, BaseTexture: BaseSolid, Complexity: 1, Phases: from(2)},
}

// Catalog returns a copy of every known ingredient in display order.
func Catalog() []Ingredient {
	return slices.Clone(catalog)
}

// IngredientsFor returns the ingredients a pet in phase p will eat.
func IngredientsFor(p growth.Phase) []Ingredient {
	var out []Ingredient
	for _, ing := range catalog {
		if ing.AcceptedIn(p) {
			out = append(out, ing)
		}
	}
	return out
}

func IngredientByID(id string) (Ingredient, bool) {
	for _, ing := range catalog {
		if ing.ID == id {
			return ing, true
		}
	}
	return Ingredient{}, false
}

// LookupIngredient resolves a typed ingredient by id or name, tolerating small
// typos. The closest match within the length-scaled edit limit wins; a tie
// between two ingredients resolves to nothing.
func LookupIngredient(raw string) (Ingredient, bool) {
	in := strings.ToLower(strings.TrimSpace(raw))
	if in == "" {
		return Ingredient{}, false
	}
	if ing, ok := IngredientByID(in); ok {
		return ing, true
	}
	for _, ing := range catalog {
		if strings.ToLower(ing.Name) == in {
			return ing, true
		}
	}
	if len(in) < 3 {
		return Ingredient{}, false
	}

	best, bestDist, tied := -1, 0, false
	for i, ing := range catalog {
		dist := levenshtein.ComputeDistance(in, ing.ID)
		if dist > levenshteinLimit(len(ing.ID)) {
			continue
		}
		// In a short word a swapped letter names another food (meal, meat).
		if len(ing.ID) <= 4 && len(in) == len(ing.ID) {
			continue
		}
		switch {
		case best < 0 || dist < bestDist:
			best, bestDist, tied = i, dist, false
		case dist == bestDist:
			tied = true
		}
	}
	if best < 0 || tied {
		return Ingredient{}, false
	}
	return catalog[best], true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
