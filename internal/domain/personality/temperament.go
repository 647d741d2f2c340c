package personality

import "lovepet/internal/domain/chance"

const (
	TraitMin = 0
	TraitMax = 100

	temperamentDrawMin = 30
	temperamentDrawMax = 80
)

// Temperament is drawn once at birth and never moves during play.
type Temperament struct {
	Sensitivity  int `json:"sensitivity"`
	Energy       int `json:"energy"`
	Adaptability int `json:"adaptability"`
	Reaction     int `json:"reaction"`
}

type TemperamentTrait string

const (
	TemperamentSensitivity  TemperamentTrait = "sensitivity"
	TemperamentEnergy       TemperamentTrait = "energy"
	TemperamentAdaptability TemperamentTrait = "adaptability"
	TemperamentReaction     TemperamentTrait = "reaction"
)

func NewTemperament(src chance.Source) Temperament {
	return Temperament{
		Sensitivity:  chance.Range(src, temperamentDrawMin, temperamentDrawMax),
		Energy:       chance.Range(src, temperamentDrawMin, temperamentDrawMax),
		Adaptability: chance.Range(src, temperamentDrawMin, temperamentDrawMax),
		Reaction:     chance.Range(src, temperamentDrawMin, temperamentDrawMax),
	}
}

func (t Temperament) Valid() bool {
	for _, v := range []int{t.Sensitivity, t.Energy, t.Adaptability, t.Reaction} {
		if v < TraitMin || v > TraitMax {
			return false
		}
	}
	return true
}

// Nudge moves a temperament trait by at most one point. Nothing in the
// gameplay loop calls it; it exists for long-horizon tuning.
func (t Temperament) Nudge(trait TemperamentTrait, delta int) Temperament {
	delta = clamp(delta, -1, 1)
	out := t
	switch trait {
	case TemperamentSensitivity:
		out.Sensitivity = clamp(out.Sensitivity+delta, TraitMin, TraitMax)
	case TemperamentEnergy:
		out.Energy = clamp(out.Energy+delta, TraitMin, TraitMax)
	case TemperamentAdaptability:
		out.Adaptability = clamp(out.Adaptability+delta, TraitMin, TraitMax)
	case TemperamentReaction:
		out.Reaction = clamp(out.Reaction+delta, TraitMin, TraitMax)
	}
	return out
}

// TraitModifier scales personality deltas.
func (t Temperament) TraitModifier() float64 {
	mod := 1.0
	switch {
	case t.Sensitivity > 70:
		mod *= 1.3
	case t.Sensitivity < 30:
		mod *= 0.8
	}
	switch {
	case t.Reaction > 70:
		mod *= 1.2
	case t.Reaction < 30:
		mod *= 0.7
	}
	return mod
}

// IntensityModifier scales emotion deltas.
func (t Temperament) IntensityModifier() float64 {
	switch {
	case t.Reaction > 60:
		return 1.3
	case t.Reaction < 40:
		return 0.7
	default:
		return 1.0
	}
}

func (t Temperament) Descriptors() []string {
	var out []string
	pick := func(v int, high, low string) {
		switch {
		case v > 70:
			out = append(out, high)
		case v < 30:
			out = append(out, low)
		}
	}
	pick(t.Sensitivity, "sensitive", "resilient")
	pick(t.Energy, "energetic", "calm")
	pick(t.Adaptability, "flexible", "routine-bound")
	pick(t.Reaction, "expressive", "reserved")
	if len(out) == 0 {
		return []string{"balanced"}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
