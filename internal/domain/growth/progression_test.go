package growth

import (
	"math"
	"testing"
)

func readyNewborn() (Pet, Metrics) {
	pet := NewPet("p-1", t0)
	pet.AgeMinutes = 60
	metrics := NewMetrics()
	metrics.SleepMinutes = 40
	metrics.AwakeMinutes = 60
	metrics.Interactions = 10
	return pet, metrics
}

func TestProgressIsMinimumOfConditions(t *testing.T) {
	pet, metrics := readyNewborn()
	// 100% time, 100% interactions, sleep ratio 0.04 of required 0.4 -> 10%.
	metrics.SleepMinutes = 4
	metrics.AwakeMinutes = 96

	got := Progress(pet, metrics, AcceleratedTable())
	if math.Abs(got-0.1) > 1e-9 {
		t.Fatalf("expected progress 0.1, got %v", got)
	}

	out, outMetrics, transitioned := CheckTransition(pet, metrics, AcceleratedTable())
	if transitioned {
		t.Fatalf("did not expect a transition")
	}
	if math.Abs(out.Progress-0.1) > 1e-9 || outMetrics.Interactions != 10 {
		t.Fatalf("expected progress refreshed and metrics kept, got %+v %+v", out, outMetrics)
	}
}

func TestCheckTransitionAdvancesOnePhaseAndResets(t *testing.T) {
	pet, metrics := readyNewborn()
	metrics = RecordInteraction(metrics, ActivityPlay)

	out, outMetrics, transitioned := CheckTransition(pet, metrics, AcceleratedTable())
	if !transitioned {
		t.Fatalf("expected transition")
	}
	if out.Phase != PhaseBaby {
		t.Fatalf("expected phase %d, got %d", PhaseBaby, out.Phase)
	}
	if out.AgeMinutes != 0 || out.Progress != 0 {
		t.Fatalf("expected age and progress reset, got %+v", out)
	}
	if outMetrics.Interactions != 0 || outMetrics.SleepMinutes != 0 || outMetrics.AwakeMinutes != 0 {
		t.Fatalf("expected metrics reset, got %+v", outMetrics)
	}
	for _, a := range Activities() {
		if outMetrics.Activities[a] != 0 {
			t.Fatalf("expected activity %s reset", a)
		}
	}
}

func TestCheckTransitionNeverSkipsPhases(t *testing.T) {
	pet, metrics := readyNewborn()
	pet.AgeMinutes = 100000
	metrics.Interactions = 1000

	out, _, transitioned := CheckTransition(pet, metrics, AcceleratedTable())
	if !transitioned || out.Phase != PhaseBaby {
		t.Fatalf("expected exactly one phase step, got %d", out.Phase)
	}
}

func TestTerminalPhaseNeverTransitions(t *testing.T) {
	pet := NewPet("p-1", t0)
	pet.Phase = PhaseTeen
	metrics := NewMetrics()

	if got := Progress(pet, metrics, AcceleratedTable()); got != 1 {
		t.Fatalf("expected terminal progress 1, got %v", got)
	}
	out, _, transitioned := CheckTransition(pet, metrics, AcceleratedTable())
	if transitioned || out.Phase != PhaseTeen || out.Progress != 1 {
		t.Fatalf("expected teen to stay put with progress 1, got %+v", out)
	}
}

func TestProgressBreakdown(t *testing.T) {
	pet := NewPet("p-1", t0)
	pet.Phase = PhaseBaby
	pet.AgeMinutes = 60
	metrics := NewMetrics()
	metrics.SleepMinutes = 35
	metrics.AwakeMinutes = 65
	metrics.Interactions = 5

	b := ProgressBreakdown(pet, metrics, AcceleratedTable())
	if b.Time.Required != 120 || math.Abs(b.Time.Progress-0.5) > 1e-9 {
		t.Fatalf("unexpected time condition: %+v", b.Time)
	}
	if b.Sleep.Required != 42 || math.Abs(b.Sleep.Progress-1) > 1e-9 {
		t.Fatalf("unexpected sleep condition: %+v", b.Sleep)
	}
	if math.Abs(b.Interactions.Progress-0.25) > 1e-9 {
		t.Fatalf("unexpected interaction condition: %+v", b.Interactions)
	}
	if math.Abs(b.Overall-0.25) > 1e-9 {
		t.Fatalf("expected overall 0.25, got %v", b.Overall)
	}
}

func TestWeightedInteractions(t *testing.T) {
	metrics := NewMetrics()
	metrics = RecordInteraction(metrics, ActivityPlay)
	metrics = RecordInteraction(metrics, ActivityCook)
	metrics = RecordInteraction(metrics, ActivityTalk)

	if got := WeightedInteractions(metrics); math.Abs(got-2.1) > 1e-9 {
		t.Fatalf("expected 2.1, got %v", got)
	}
	if metrics.Interactions != 3 {
		t.Fatalf("expected 3 interactions, got %d", metrics.Interactions)
	}
}

func TestTableByProfile(t *testing.T) {
	prod, err := TableByProfile("production")
	if err != nil {
		t.Fatalf("production profile: %v", err)
	}
	if cfg, _ := prod.For(PhaseNewborn); cfg.MinMinutes != 4320 {
		t.Fatalf("expected 4320 minutes, got %v", cfg.MinMinutes)
	}
	if _, err := TableByProfile("turbo"); err == nil {
		t.Fatalf("expected unknown profile error")
	}
	if name := AcceleratedTable().Name(PhasePuppy); name != "Puppy" {
		t.Fatalf("unexpected phase name %q", name)
	}
}
