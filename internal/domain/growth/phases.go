package growth

import (
	"fmt"
	"math"
	"strings"
)

type PhaseConfig struct {
	Name string
	// MinMinutes is +Inf for the terminal phase.
	MinMinutes      float64
	MinSleepRatio   float64
	MinInteractions int
}

func (c PhaseConfig) Terminal() bool {
	return math.IsInf(c.MinMinutes, 1)
}

// Table holds one row per phase, indexed by Phase-1.
type Table [FinalPhase]PhaseConfig

func (t Table) For(p Phase) (PhaseConfig, bool) {
	if !p.Valid() {
		return PhaseConfig{}, false
	}
	return t[p-1], true
}

func (t Table) Name(p Phase) string {
	cfg, ok := t.For(p)
	if !ok {
		return "Unknown"
	}
	return cfg.Name
}

const (
	ProfileAccelerated = "accelerated"
	ProfileProduction  = "production"
)

// AcceleratedTable keeps phase lengths short enough to watch a pet grow up in a day.
func AcceleratedTable() Table {
	return Table{
		{Name: "Newborn", MinMinutes: 60, MinSleepRatio: 0.4, MinInteractions: 10},
		{Name: "Baby", MinMinutes: 120, MinSleepRatio: 0.35, MinInteractions: 20},
		{Name: "Puppy", MinMinutes: 240, MinSleepRatio: 0.3, MinInteractions: 35},
		{Name: "Child", MinMinutes: 480, MinSleepRatio: 0.3, MinInteractions: 50},
		{Name: "Teen", MinMinutes: math.Inf(1), MinSleepRatio: 0.25, MinInteractions: 0},
	}
}

// ProductionTable stretches the phases to 3, 5, 10 and 15 days.
func ProductionTable() Table {
	t := AcceleratedTable()
	t[PhaseNewborn-1].MinMinutes = 4320
	t[PhaseBaby-1].MinMinutes = 7200
	t[PhasePuppy-1].MinMinutes = 14400
	t[PhaseChild-1].MinMinutes = 21600
	return t
}

func TableByProfile(name string) (Table, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ProfileAccelerated:
		return AcceleratedTable(), nil
	case ProfileProduction:
		return ProductionTable(), nil
	default:
		return Table{}, fmt.Errorf("unknown growth profile %q", name)
	}
}
