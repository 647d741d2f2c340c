package growth

import "math"

// RecordInteraction counts one interaction of the given activity toward the phase.
func RecordInteraction(metrics Metrics, activity Activity) Metrics {
	out := metrics.clone()
	out.Interactions++
	out.Activities[activity]++
	return out
}

// WeightedInteractions scores the activity mix. Unknown activities weigh 0.5.
func WeightedInteractions(metrics Metrics) float64 {
	total := 0.0
	for activity, count := range metrics.Activities {
		weight, ok := ActivityWeights[activity]
		if !ok {
			weight = defaultActivityWeight
		}
		total += float64(count) * weight
	}
	return total
}

func SleepRatio(metrics Metrics) float64 {
	total := metrics.SleepMinutes + metrics.AwakeMinutes
	if total <= 0 {
		return 0
	}
	return float64(metrics.SleepMinutes) / float64(total)
}

type Condition struct {
	Current  float64 `json:"current"`
	Required float64 `json:"required"`
	Progress float64 `json:"progress"`
}

type Breakdown struct {
	Time         Condition `json:"time"`
	Sleep        Condition `json:"sleep"`
	Interactions Condition `json:"interactions"`
	Overall      float64   `json:"overall"`
}

// Progress is the minimum of the time, sleep and interaction conditions, so no
// single metric can be ground out to rush a phase.
func Progress(pet Pet, metrics Metrics, table Table) float64 {
	return ProgressBreakdown(pet, metrics, table).Overall
}

func ProgressBreakdown(pet Pet, metrics Metrics, table Table) Breakdown {
	cfg, ok := table.For(pet.Phase)
	if !ok || cfg.Terminal() {
		return Breakdown{
			Time:         Condition{Current: float64(pet.AgeMinutes), Progress: 1},
			Sleep:        Condition{Progress: 1},
			Interactions: Condition{Current: float64(metrics.Interactions), Progress: 1},
			Overall:      1,
		}
	}

	timeProgress := min(1.0, float64(pet.AgeMinutes)/cfg.MinMinutes)

	sleepProgress := 1.0
	if cfg.MinSleepRatio > 0 {
		sleepProgress = min(1.0, SleepRatio(metrics)/cfg.MinSleepRatio)
	}

	interactionProgress := 1.0
	if cfg.MinInteractions > 0 {
		interactionProgress = min(1.0, float64(metrics.Interactions)/float64(cfg.MinInteractions))
	}

	return Breakdown{
		Time: Condition{
			Current:  float64(pet.AgeMinutes),
			Required: cfg.MinMinutes,
			Progress: timeProgress,
		},
		Sleep: Condition{
			Current:  float64(metrics.SleepMinutes),
			Required: math.Round(cfg.MinMinutes * cfg.MinSleepRatio),
			Progress: sleepProgress,
		},
		Interactions: Condition{
			Current:  float64(metrics.Interactions),
			Required: float64(cfg.MinInteractions),
			Progress: interactionProgress,
		},
		Overall: min(timeProgress, sleepProgress, interactionProgress),
	}
}

// CheckTransition advances the pet by exactly one phase once every condition
// is met. The terminal phase never advances. On advance the age, progress and
// per-phase metrics start over; otherwise only the progress is refreshed.
func CheckTransition(pet Pet, metrics Metrics, table Table) (Pet, Metrics, bool) {
	progress := Progress(pet, metrics, table)
	if progress >= 1 && pet.Phase < FinalPhase {
		out := pet
		out.Phase++
		out.AgeMinutes = 0
		out.Progress = 0
		return out, NewMetrics(), true
	}

	out := pet
	out.Progress = progress
	return out, metrics, false
}
