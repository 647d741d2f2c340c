package cooking

import "lovepet/internal/domain/growth"

type Reason string

const (
	ReasonEmpty        Reason = "empty"
	ReasonBurned       Reason = "burned"
	ReasonWeirdTexture Reason = "weird_texture"
	ReasonTooComplex   Reason = "too_complex"
	ReasonNotForPhase  Reason = "ingredient_not_for_phase"
)

const (
	defaultComplexityCap = 4

	MinQuality = 1
	MaxQuality = 5
)

var complexityLimits = map[growth.Phase]int{
	growth.PhaseNewborn: 4,
	growth.PhaseBaby:    6,
	growth.PhasePuppy:   8,
	growth.PhaseChild:   10,
	growth.PhaseTeen:    15,
}

// ComplexityLimit is the most complex dish a pet in phase p accepts.
func ComplexityLimit(p growth.Phase) int {
	if limit, ok := complexityLimits[p]; ok {
		return limit
	}
	return defaultComplexityCap
}

type Evaluation struct {
	Accepted bool   `json:"accepted"`
	Reason   Reason `json:"reason,omitempty"`
	Quality  int    `json:"quality,omitempty"`
}

// Evaluate decides whether a pet in phase p eats the dish. The first failing
// check is the reason given.
func Evaluate(d Dish, p growth.Phase) Evaluation {
	switch {
	case len(d.Ingredients) == 0:
		return Evaluation{Reason: ReasonEmpty}
	case d.Status == StatusBurned:
		return Evaluation{Reason: ReasonBurned}
	case d.Texture == TextureStrange:
		return Evaluation{Reason: ReasonWeirdTexture}
	case d.Complexity > ComplexityLimit(p):
		return Evaluation{Reason: ReasonTooComplex}
	}
	for _, ing := range d.Ingredients {
		if !ing.AcceptedIn(p) {
			return Evaluation{Reason: ReasonNotForPhase}
		}
	}
	return Evaluation{Accepted: true, Quality: quality(d)}
}

func quality(d Dish) int {
	score := 3
	switch d.Homogeneity {
	case HomogeneityHigh:
		score++
	case HomogeneityLow:
		score--
	}
	switch d.Temperature {
	case TempWarm, TempHot:
		score++
	case TempCold:
		score--
	}
	if d.Texture == TextureCreamy {
		score++
	}
	return max(MinQuality, min(MaxQuality, score))
}

// Reaction is what the pet says about the result.
func Reaction(e Evaluation) string {
	if e.Accepted {
		switch {
		case e.Quality >= 4:
			return "MMMM delicious!! ⭐⭐⭐⭐⭐"
		case e.Quality >= 3:
			return "so tasty! 😋"
		default:
			return "thanks for the food! 🥰"
		}
	}
	switch e.Reason {
	case ReasonBurned:
		return "ugh... it's burned! 😫🔥"
	case ReasonWeirdTexture:
		return "this looks... weird? 🤢"
	case ReasonTooComplex:
		return "this is too hard for me still... 😅"
	case ReasonNotForPhase:
		return "I don't think I can eat this yet... 🥺"
	case ReasonEmpty:
		return "huh? where's the food? 😶"
	default:
		return "I'm not sure... 🤔"
	}
}
