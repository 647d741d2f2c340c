package personality

// Bound is an inclusive limit on one trait. A zero Min or Max is unset.
type Bound struct {
	Trait Trait
	Min   int
	Max   int
}

func (b Bound) holds(p Personality) bool {
	v := p.Get(b.Trait)
	if b.Min > 0 && v < b.Min {
		return false
	}
	if b.Max > 0 && v > b.Max {
		return false
	}
	return true
}

type Profile struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Criteria []Bound `json:"-"`
}

// Profiles is ordered; the first match is the primary profile.
var Profiles = []Profile{
	{ID: "curious_nerd", Name: "Curious", Criteria: []Bound{
		{Trait: TraitCuriosity, Min: 70},
		{Trait: TraitPersistence, Min: 60},
		{Trait: TraitImagination, Min: 50},
	}},
	{ID: "playful_creative", Name: "Playful", Criteria: []Bound{
		{Trait: TraitImagination, Min: 70},
		{Trait: TraitSociability, Min: 60},
		{Trait: TraitSelfRegulation, Max: 55},
	}},
	{ID: "affectionate_empathetic", Name: "Affectionate", Criteria: []Bound{
		{Trait: TraitEmpathy, Min: 70},
		{Trait: TraitSociability, Min: 60},
		{Trait: TraitConfidence, Min: 55},
	}},
	{ID: "independent_adventurer", Name: "Adventurer", Criteria: []Bound{
		{Trait: TraitAutonomy, Min: 70},
		{Trait: TraitConfidence, Min: 65},
		{Trait: TraitCuriosity, Min: 55},
	}},
	{ID: "disciplined_focused", Name: "Disciplined", Criteria: []Bound{
		{Trait: TraitDiscipline, Min: 70},
		{Trait: TraitSelfRegulation, Min: 65},
		{Trait: TraitPersistence, Min: 60},
	}},
	{ID: "sensitive_artistic", Name: "Sensitive", Criteria: []Bound{
		{Trait: TraitEmpathy, Min: 65},
		{Trait: TraitImagination, Min: 65},
		{Trait: TraitSelfRegulation, Max: 50},
	}},
	{ID: "energetic_outgoing", Name: "Energetic", Criteria: []Bound{
		{Trait: TraitSociability, Min: 75},
		{Trait: TraitAutonomy, Min: 60},
	}},
	{ID: "calm_observer", Name: "Observer", Criteria: []Bound{
		{Trait: TraitSelfRegulation, Min: 70},
		{Trait: TraitCuriosity, Min: 60},
		{Trait: TraitSociability, Max: 50},
	}},
}

// MatchProfiles returns every profile p satisfies, in table order.
func MatchProfiles(p Personality) []Profile {
	var out []Profile
	for _, profile := range Profiles {
		ok := true
		for _, b := range profile.Criteria {
			if !b.holds(p) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, profile)
		}
	}
	return out
}

func PrimaryProfile(p Personality) (Profile, bool) {
	matches := MatchProfiles(p)
	if len(matches) == 0 {
		return Profile{}, false
	}
	return matches[0], true
}
