package cooking

import "errors"

var ErrItemUnavailable = errors.New("item unavailable")

type Effects struct {
	Hunger       int `json:"hunger"`
	Happiness    int `json:"happiness"`
	Satisfaction int `json:"satisfaction"`
}

func EffectsFor(quality int) Effects {
	return Effects{
		Hunger:       10 + 5*quality,
		Happiness:    3 * quality,
		Satisfaction: 2 * quality,
	}
}

type Item struct {
	RecipeID string  `json:"recipe_id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Effects  Effects `json:"effects"`
}

type Inventory []Item

// Credit adds one unit of recipe. A new line takes its effects from quality.
func (inv Inventory) Credit(r Recipe, quality int) Inventory {
	out := make(Inventory, len(inv), len(inv)+1)
	copy(out, inv)
	for i := range out {
		if out[i].RecipeID == r.ID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, Item{RecipeID: r.ID, Name: r.Name, Quantity: 1, Effects: EffectsFor(quality)})
}

// Consume takes one unit of recipeID and drops the line once it runs out.
// The returned item is the line as it was before consumption.
func (inv Inventory) Consume(recipeID string) (Inventory, Item, error) {
	for i, item := range inv {
		if item.RecipeID != recipeID {
			continue
		}
		if item.Quantity <= 0 {
			return inv, Item{}, ErrItemUnavailable
		}
		out := make(Inventory, 0, len(inv))
		out = append(out, inv[:i]...)
		if item.Quantity > 1 {
			left := item
			left.Quantity--
			out = append(out, left)
		}
		out = append(out, inv[i+1:]...)
		return out, item, nil
	}
	return inv, Item{}, ErrItemUnavailable
}

func (inv Inventory) Find(recipeID string) (Item, bool) {
	for _, item := range inv {
		if item.RecipeID == recipeID {
			return item, true
		}
	}
	return Item{}, false
}

func (inv Inventory) Valid() bool {
	for _, item := range inv {
		if item.Quantity < 0 || item.RecipeID == "" {
			return false
		}
	}
	return true
}
