package personality

import "math"

type Trait string

const (
	TraitCuriosity      Trait = "curiosity"
	TraitPersistence    Trait = "persistence"
	TraitAutonomy       Trait = "autonomy"
	TraitSociability    Trait = "sociability"
	TraitEmpathy        Trait = "empathy"
	TraitSelfRegulation Trait = "self_regulation"
	TraitImagination    Trait = "imagination"
	TraitConfidence     Trait = "confidence"
	TraitDiscipline     Trait = "discipline"
)

func Traits() []Trait {
	return []Trait{
		TraitCuriosity, TraitPersistence, TraitAutonomy,
		TraitSociability, TraitEmpathy, TraitSelfRegulation,
		TraitImagination, TraitConfidence, TraitDiscipline,
	}
}

const traitStart = 50

type Personality struct {
	Curiosity      int `json:"curiosity"`
	Persistence    int `json:"persistence"`
	Autonomy       int `json:"autonomy"`
	Sociability    int `json:"sociability"`
	Empathy        int `json:"empathy"`
	SelfRegulation int `json:"self_regulation"`
	Imagination    int `json:"imagination"`
	Confidence     int `json:"confidence"`
	Discipline     int `json:"discipline"`
}

func NewPersonality() Personality {
	return Personality{
		Curiosity: traitStart, Persistence: traitStart, Autonomy: traitStart,
		Sociability: traitStart, Empathy: traitStart, SelfRegulation: traitStart,
		Imagination: traitStart, Confidence: traitStart, Discipline: traitStart,
	}
}

func (p *Personality) field(t Trait) *int {
	switch t {
	case TraitCuriosity:
		return &p.Curiosity
	case TraitPersistence:
		return &p.Persistence
	case TraitAutonomy:
		return &p.Autonomy
	case TraitSociability:
		return &p.Sociability
	case TraitEmpathy:
		return &p.Empathy
	case TraitSelfRegulation:
		return &p.SelfRegulation
	case TraitImagination:
		return &p.Imagination
	case TraitConfidence:
		return &p.Confidence
	case TraitDiscipline:
		return &p.Discipline
	}
	return nil
}

func (p Personality) Get(t Trait) int {
	if f := p.field(t); f != nil {
		return *f
	}
	return 0
}

func (p Personality) Valid() bool {
	for _, t := range Traits() {
		if v := p.Get(t); v < TraitMin || v > TraitMax {
			return false
		}
	}
	return true
}

// Apply adds each trait delta scaled by the temperament and current mood,
// clamped to [0,100].
func (p Personality) Apply(deltas map[Trait]int, temperament Temperament, mood EmotionalState) Personality {
	out := p
	mod := temperament.TraitModifier() * mood.Receptivity()
	for _, t := range Traits() {
		delta, ok := deltas[t]
		if !ok {
			continue
		}
		f := out.field(t)
		*f = clamp(*f+roundHalfUp(float64(delta)*mod), TraitMin, TraitMax)
	}
	return out
}

var highTraitLabels = map[Trait]string{
	TraitCuriosity:      "very curious",
	TraitPersistence:    "persistent",
	TraitAutonomy:       "independent",
	TraitSociability:    "sociable",
	TraitEmpathy:        "empathetic",
	TraitSelfRegulation: "composed",
	TraitImagination:    "imaginative",
	TraitConfidence:     "confident",
	TraitDiscipline:     "disciplined",
}

var lowTraitLabels = []struct {
	trait Trait
	label string
}{
	{TraitConfidence, "insecure"},
	{TraitSociability, "shy"},
	{TraitSelfRegulation, "impulsive"},
}

func (p Personality) Descriptors() []string {
	var out []string
	for _, t := range Traits() {
		if p.Get(t) > 70 {
			out = append(out, highTraitLabels[t])
		}
	}
	for _, low := range lowTraitLabels {
		if p.Get(low.trait) < 30 {
			out = append(out, low.label)
		}
	}
	if len(out) == 0 {
		return []string{"still developing"}
	}
	return out
}

// roundHalfUp rounds .5 toward +Inf, so -2.5 becomes -2.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
