package care

import (
	"context"
	"errors"
	"testing"
	"time"

	"lovepet/internal/app/petstate"
	"lovepet/internal/app/ports"
	"lovepet/internal/domain/chance"
	"lovepet/internal/domain/event"
	"lovepet/internal/domain/growth"
	"lovepet/internal/domain/personality"
)

func neutralSnapshot() petstate.Snapshot {
	snap := petstate.Newborn("pet-1", chance.NewSequence(0.5), t0)
	snap.Temperament = personality.Temperament{Sensitivity: 50, Energy: 50, Adaptability: 50, Reaction: 50}
	return snap
}

func TestEngineApply_FansOutToEverySubsystem(t *testing.T) {
	engine := Engine{Random: chance.NewSequence(0), Phases: growth.AcceleratedTable(), NewID: func() string { return "m-1" }}
	snap := neutralSnapshot()

	out, res, err := engine.Apply(context.Background(), snap, personality.ActionCook, "", t0)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	// happiness 70 > 70 is false, so receptivity is 1.
	if out.Personality.Curiosity != 52 || out.Personality.Persistence != 52 || out.Personality.Autonomy != 51 {
		t.Fatalf("unexpected personality: %+v", out.Personality)
	}
	if out.Emotion.Happiness != 78 || out.Emotion.Security != 75 {
		t.Fatalf("unexpected emotion: %+v", out.Emotion)
	}
	if h, ok := out.Habits.Find(personality.HabitCook); !ok || h.Strength != 10 || !res.HabitFormed {
		t.Fatalf("expected cook habit formed, got %+v", out.Habits)
	}
	if res.Memory == nil || res.Memory.ID != "m-1" || res.Memory.Event != "Cooked something together" {
		t.Fatalf("expected memory formed on a zero roll, got %+v", res.Memory)
	}
	if res.Memory.Emotion != personality.MemoryJoy || res.Memory.Intensity != 53 {
		t.Fatalf("unexpected memory: %+v", res.Memory)
	}
	if out.Metrics.Interactions != 1 || out.Metrics.Activities[growth.ActivityCook] != 1 {
		t.Fatalf("expected one cook interaction, got %+v", out.Metrics)
	}
	if snap.Personality.Curiosity != 50 || len(snap.Habits) != 0 {
		t.Fatalf("apply mutated its input")
	}

	types := map[string]bool{}
	for _, e := range res.Events {
		types[e.Type] = true
	}
	for _, want := range []string{event.TypeHabitFormed, event.TypeMemoryFormed, event.TypeActionApplied} {
		if !types[want] {
			t.Fatalf("missing %s event in %+v", want, res.Events)
		}
	}
}

func TestEngineApply_PersonalityUsesMoodBeforeAction(t *testing.T) {
	engine := Engine{Random: chance.NewSequence(0.99)}
	snap := neutralSnapshot()
	snap.Emotion.Happiness = 65

	// praise lifts happiness to 80, but the trait change uses the 65 it started at.
	out, _, err := engine.Apply(context.Background(), snap, personality.ActionPraise, "", t0)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if out.Personality.Confidence != 53 {
		t.Fatalf("expected unscaled +3 confidence, got %d", out.Personality.Confidence)
	}
	if out.Emotion.Happiness != 80 {
		t.Fatalf("expected happiness 80, got %d", out.Emotion.Happiness)
	}
}

func TestEngineApply_NoMemoryWhenRollMisses(t *testing.T) {
	engine := Engine{Random: chance.NewSequence(0.99)}
	_, res, err := engine.Apply(context.Background(), neutralSnapshot(), personality.ActionFeed, "", t0)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if res.Memory != nil {
		t.Fatalf("expected no memory, got %+v", res.Memory)
	}
}

func TestEngineApply_IgnoreCountsNoInteraction(t *testing.T) {
	engine := Engine{Random: chance.NewSequence(0.99)}
	out, res, err := engine.Apply(context.Background(), neutralSnapshot(), personality.ActionIgnore, "", t0)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if out.Metrics.Interactions != 0 || res.Activity != "" {
		t.Fatalf("ignoring the pet must not count as care, got %+v", out.Metrics)
	}
}

func TestEngineApply_UnknownAction(t *testing.T) {
	_, _, err := Engine{}.Apply(context.Background(), neutralSnapshot(), personality.ActionKind("dance"), "", t0)
	if !errors.Is(err, ports.ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestEngineApply_TransitionsWhenReady(t *testing.T) {
	engine := Engine{Random: chance.NewSequence(0.99), Phases: growth.AcceleratedTable()}
	snap := neutralSnapshot()
	snap.Pet.AgeMinutes = 60
	snap.Metrics.SleepMinutes = 40
	snap.Metrics.AwakeMinutes = 60
	snap.Metrics.Interactions = 9

	out, res, err := engine.Apply(context.Background(), snap, personality.ActionFreePlay, "", t0)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !res.Transitioned || out.Pet.Phase != growth.PhaseBaby || out.Metrics.Interactions != 0 {
		t.Fatalf("expected transition to baby with fresh metrics, got %+v %+v", out.Pet, out.Metrics)
	}
	var found bool
	for _, e := range res.Events {
		if e.Type == event.TypePhaseAdvanced {
			found = true
			if e.Payload["phase_name"] != "Baby" {
				t.Fatalf("unexpected phase event payload: %+v", e.Payload)
			}
		}
	}
	if !found {
		t.Fatalf("missing phase_advanced event")
	}
}

func TestEngineAdvance_SettlesTimeAndDecay(t *testing.T) {
	snap := neutralSnapshot()
	snap.Habits = personality.Habits{{Type: personality.HabitPlay, Strength: 3, LastTime: t0}}

	out, minutes := Engine{}.Advance(snap, t0.Add(2*time.Hour+5*time.Minute))
	if minutes != 125 || out.Metrics.AwakeMinutes != 125 || out.Pet.Energy != 88 {
		t.Fatalf("unexpected time settlement: minutes=%d pet=%+v", minutes, out.Pet)
	}
	if out.Emotion.Happiness != 58 {
		t.Fatalf("expected 12 decay blocks, got happiness %d", out.Emotion.Happiness)
	}
	if len(out.Habits) != 0 {
		t.Fatalf("expected faded habit removed, got %+v", out.Habits)
	}
}
