package growth

import "time"

type Phase int

const (
	PhaseNewborn Phase = iota + 1
	PhaseBaby
	PhasePuppy
	PhaseChild
	PhaseTeen
)

const (
	FirstPhase = PhaseNewborn
	FinalPhase = PhaseTeen

	MaxEnergy = 100

	SleepMinutesPerEnergy = 5
	AwakeMinutesPerDrain  = 10
)

func (p Phase) Valid() bool {
	return p >= FirstPhase && p <= FinalPhase
}

type Pet struct {
	ID             string     `json:"id"`
	Phase          Phase      `json:"phase"`
	AgeMinutes     int        `json:"age_minutes"`
	Progress       float64    `json:"progress"`
	Energy         int        `json:"energy"`
	Sleeping       bool       `json:"sleeping"`
	SleepStartedAt *time.Time `json:"sleep_started_at"`
	LastActiveAt   time.Time  `json:"last_active_at"`
}

func NewPet(id string, now time.Time) Pet {
	return Pet{
		ID:           id,
		Phase:        PhaseNewborn,
		Energy:       MaxEnergy,
		LastActiveAt: now,
	}
}

// Valid reports whether a persisted pet can be trusted as-is.
func (p Pet) Valid() bool {
	if !p.Phase.Valid() || p.AgeMinutes < 0 {
		return false
	}
	if p.Energy < 0 || p.Energy > MaxEnergy {
		return false
	}
	if p.Progress < 0 || p.Progress > 1 {
		return false
	}
	return !p.LastActiveAt.IsZero()
}

type Activity string

const (
	ActivityPlay  Activity = "play"
	ActivityFeed  Activity = "feed"
	ActivityCook  Activity = "cook"
	ActivityClean Activity = "clean"
	ActivityTalk  Activity = "talk"
)

func Activities() []Activity {
	return []Activity{ActivityPlay, ActivityFeed, ActivityCook, ActivityClean, ActivityTalk}
}

// ActivityWeights scores how much each activity counts toward care quality.
var ActivityWeights = map[Activity]float64{
	ActivityPlay:  1.0,
	ActivityCook:  0.8,
	ActivityFeed:  0.6,
	ActivityClean: 0.5,
	ActivityTalk:  0.3,
}

const defaultActivityWeight = 0.5

// Metrics are accumulated per phase and reset on every transition.
type Metrics struct {
	SleepMinutes int              `json:"sleep_minutes"`
	AwakeMinutes int              `json:"awake_minutes"`
	Interactions int              `json:"interactions"`
	Activities   map[Activity]int `json:"activities"`
}

func NewMetrics() Metrics {
	activities := make(map[Activity]int, len(Activities()))
	for _, a := range Activities() {
		activities[a] = 0
	}
	return Metrics{Activities: activities}
}

func (m Metrics) Valid() bool {
	return m.SleepMinutes >= 0 && m.AwakeMinutes >= 0 && m.Interactions >= 0
}

func (m Metrics) clone() Metrics {
	out := m
	out.Activities = make(map[Activity]int, len(m.Activities))
	for k, v := range m.Activities {
		out.Activities[k] = v
	}
	return out
}
