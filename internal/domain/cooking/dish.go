package cooking

import (
	"errors"
	"slices"
	"strings"
)

const MaxIngredients = 5

var ErrDishFull = errors.New("dish already holds the maximum number of ingredients")

type Texture string

const (
	TextureLiquid  Texture = "liquid"
	TextureCreamy  Texture = "creamy"
	TexturePasty   Texture = "pasty"
	TextureSolid   Texture = "solid"
	TextureStrange Texture = "strange"
)

type Temperature string

const (
	TempCold    Temperature = "cold"
	TempWarm    Temperature = "warm"
	TempHot     Temperature = "hot"
	TempBurning Temperature = "burning"
)

type Homogeneity string

const (
	HomogeneityLow    Homogeneity = "low"
	HomogeneityMedium Homogeneity = "medium"
	HomogeneityHigh   Homogeneity = "high"
)

type Status string

const (
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusBurned    Status = "burned"
	StatusFailed    Status = "failed"
)

type Action string

const (
	ActionMix    Action = "MIX"
	ActionBeat   Action = "BEAT"
	ActionCook   Action = "COOK"
	ActionCool   Action = "COOL"
	ActionSeason Action = "SEASON"
)

func Actions() []Action {
	return []Action{ActionMix, ActionBeat, ActionCook, ActionCool, ActionSeason}
}

func ParseAction(raw string) (Action, bool) {
	a := Action(strings.ToUpper(strings.TrimSpace(raw)))
	return a, slices.Contains(Actions(), a)
}

// Dish is one cooking session. Every method returns a new value.
type Dish struct {
	Ingredients []Ingredient `json:"ingredients"`
	Texture     Texture      `json:"texture"`
	Temperature Temperature  `json:"temperature"`
	Homogeneity Homogeneity  `json:"homogeneity"`
	Complexity  int          `json:"complexity"`
	Status      Status       `json:"status"`
	History     []Action     `json:"history"`
}

func NewDish() Dish {
	return Dish{
		Ingredients: []Ingredient{},
		Texture:     TextureLiquid,
		Temperature: TempCold,
		Homogeneity: HomogeneityLow,
		Status:      StatusPreparing,
		History:     []Action{},
	}
}

func (d Dish) clone() Dish {
	out := d
	out.Ingredients = slices.Clone(d.Ingredients)
	out.History = slices.Clone(d.History)
	return out
}

// Ruined reports a terminal dish that ignores further actions.
func (d Dish) Ruined() bool {
	return d.Status == StatusBurned || d.Status == StatusFailed
}

// Add appends ing. Adding stirs up any earlier mixing.
func (d Dish) Add(ing Ingredient) (Dish, error) {
	if len(d.Ingredients) >= MaxIngredients {
		return d, ErrDishFull
	}
	out := d.clone()
	out.Ingredients = append(out.Ingredients, ing)
	out.Complexity += ing.Complexity
	out.Texture = textureOf(out.Ingredients)
	if d.Homogeneity == HomogeneityHigh {
		out.Homogeneity = HomogeneityMedium
	} else {
		out.Homogeneity = HomogeneityLow
	}
	return out, nil
}

func textureOf(ingredients []Ingredient) Texture {
	if len(ingredients) == 0 {
		return TextureLiquid
	}
	var hasLiquid, hasSolid, hasSoft, hasProtein, hasFruit bool
	for _, ing := range ingredients {
		switch ing.BaseTexture {
		case BaseLiquid:
			hasLiquid = true
		case BaseSolid:
			hasSolid = true
		case BaseSoft:
			hasSoft = true
		}
		switch ing.Group {
		case GroupProtein:
			hasProtein = true
		case GroupFruit:
			hasFruit = true
		}
	}

	switch {
	case len(ingredients) >= 3 && hasProtein && hasFruit:
		return TextureStrange
	case hasLiquid && hasSolid:
		return TexturePasty
	case hasLiquid && hasSoft:
		return TextureCreamy
	case hasSolid:
		return TextureSolid
	case hasSoft:
		return TextureCreamy
	case hasLiquid:
		return TextureLiquid
	default:
		return TexturePasty
	}
}

// Apply runs one action. Burned and failed dishes are returned unchanged.
func (d Dish) Apply(a Action) Dish {
	if d.Ruined() {
		return d
	}
	out := d.clone()
	out.History = append(out.History, a)

	switch a {
	case ActionMix:
		// Only a strange dish that had not been mixed yet can be rescued here.
		if d.Texture == TextureStrange && d.Homogeneity == HomogeneityLow {
			out.Texture = TexturePasty
		}
		out.Homogeneity = nextHomogeneity(d.Homogeneity)
	case ActionBeat:
		out.Texture = smoother(d.Texture)
		out.Complexity++
	case ActionCook:
		if d.Temperature == TempHot {
			out.Temperature = TempBurning
			out.Status = StatusBurned
			return out
		}
		out.Temperature = hotter(d.Temperature)
		if d.Texture == TextureStrange && d.Homogeneity != HomogeneityLow {
			out.Texture = TexturePasty
		}
	case ActionCool:
		out.Temperature = cooler(d.Temperature)
	case ActionSeason:
		out.Complexity++
	}
	return out
}

func nextHomogeneity(h Homogeneity) Homogeneity {
	switch h {
	case HomogeneityLow:
		return HomogeneityMedium
	default:
		return HomogeneityHigh
	}
}

func smoother(t Texture) Texture {
	switch t {
	case TextureSolid:
		return TexturePasty
	case TexturePasty:
		return TextureCreamy
	case TextureCreamy, TextureLiquid:
		return TextureLiquid
	default:
		return t
	}
}

func hotter(t Temperature) Temperature {
	switch t {
	case TempCold:
		return TempWarm
	case TempWarm:
		return TempHot
	default:
		return TempBurning
	}
}

func cooler(t Temperature) Temperature {
	switch t {
	case TempBurning:
		return TempHot
	case TempHot:
		return TempWarm
	default:
		return TempCold
	}
}

// Finish serves the dish. A burned dish stays burned and an empty one fails.
func (d Dish) Finish() Dish {
	if d.Status == StatusBurned {
		return d
	}
	out := d.clone()
	if len(d.Ingredients) == 0 {
		out.Status = StatusFailed
		return out
	}
	out.Status = StatusReady
	return out
}

// Signature identifies the recipe: sorted ingredient ids, then the actions in order.
func (d Dish) Signature() string {
	ids := make([]string, 0, len(d.Ingredients))
	for _, ing := range d.Ingredients {
		ids = append(ids, ing.ID)
	}
	slices.Sort(ids)
	actions := make([]string, 0, len(d.History))
	for _, a := range d.History {
		actions = append(actions, string(a))
	}
	return strings.Join(ids, ",") + "|" + strings.Join(actions, ",")
}
