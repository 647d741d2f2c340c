package personality

import "time"

type HabitType string

const (
	HabitStudy     HabitType = "study"
	HabitPlay      HabitType = "play"
	HabitExplore   HabitType = "explore"
	HabitSocialize HabitType = "socialize"
	HabitCook      HabitType = "cook"
	HabitRoutine   HabitType = "routine"
	HabitCare      HabitType = "care"
)

func HabitTypes() []HabitType {
	return []HabitType{HabitStudy, HabitPlay, HabitExplore, HabitSocialize, HabitCook, HabitRoutine, HabitCare}
}

const (
	habitGain             = 10
	habitRepetitionBonus  = 5
	habitRepetitionWindow = 24 * time.Hour
	habitDecayPerHour     = 2
	strongHabitThreshold  = 50
)

type Habit struct {
	Type     HabitType `json:"type"`
	Strength int       `json:"strength"`
	LastTime time.Time `json:"last_time"`
}

var habitDescriptors = map[HabitType]string{
	HabitStudy:     "curious",
	HabitPlay:      "playful",
	HabitExplore:   "adventurous",
	HabitSocialize: "sociable",
	HabitCook:      "little chef",
	HabitRoutine:   "organized",
	HabitCare:      "affectionate",
}

func (h Habit) Descriptor() string {
	if d, ok := habitDescriptors[h.Type]; ok {
		return d
	}
	return string(h.Type)
}

// Habits keeps first-formed order.
type Habits []Habit

// Practice strengthens the habit of the given type, forming it on first use.
// It reports whether the habit was newly formed.
func (hs Habits) Practice(kind HabitType, now time.Time) (Habits, bool) {
	out := make(Habits, len(hs))
	copy(out, hs)
	for i, h := range out {
		if h.Type != kind {
			continue
		}
		gain := habitGain
		if now.Sub(h.LastTime) < habitRepetitionWindow {
			gain += habitRepetitionBonus
		}
		out[i].Strength = clamp(h.Strength+gain, TraitMin, TraitMax)
		out[i].LastTime = now
		return out, false
	}
	return append(out, Habit{Type: kind, Strength: habitGain, LastTime: now}), true
}

// DecayHours is the number of whole decay steps in minutes.
func DecayHours(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	return minutes / 60
}

// Decay weakens every habit by two points per elapsed hour and drops the
// habits that fade out.
func (hs Habits) Decay(minutes int) Habits {
	hours := DecayHours(minutes)
	if hours <= 0 {
		return hs
	}
	out := make(Habits, 0, len(hs))
	for _, h := range hs {
		h.Strength = clamp(h.Strength-habitDecayPerHour*hours, TraitMin, TraitMax)
		if h.Strength > 0 {
			out = append(out, h)
		}
	}
	return out
}

func (hs Habits) Find(kind HabitType) (Habit, bool) {
	for _, h := range hs {
		if h.Type == kind {
			return h, true
		}
	}
	return Habit{}, false
}

// Multiplier maps habit strength 0..100 onto a familiarity factor 1.0..1.5.
func (hs Habits) Multiplier(kind HabitType) float64 {
	h, ok := hs.Find(kind)
	if !ok {
		return 1.0
	}
	return 1.0 + float64(h.Strength)/200
}

func (hs Habits) Strong() Habits {
	var out Habits
	for _, h := range hs {
		if h.Strength > strongHabitThreshold {
			out = append(out, h)
		}
	}
	return out
}

func (hs Habits) Valid() bool {
	for _, h := range hs {
		if h.Strength <= 0 || h.Strength > TraitMax || h.Type == "" {
			return false
		}
	}
	return true
}
