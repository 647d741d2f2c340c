package care

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"lovepet/internal/app/ports"
	"lovepet/internal/domain/event"
	"lovepet/internal/domain/growth"
	"lovepet/internal/domain/personality"
)

func seed(t *testing.T, f fixture, petID string, kind ports.EntityKind, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %s: %v", kind, err)
	}
	f.store.Seed(petID, kind, raw)
}

func seedNeutral(t *testing.T, f fixture, petID string) {
	seed(t, f, petID, ports.KindTemperament, personality.Temperament{Sensitivity: 50, Energy: 50, Adaptability: 50, Reaction: 50})
}

func eventTypes(t *testing.T, f fixture, petID string) []string {
	t.Helper()
	events, err := f.events.ListByPetID(context.Background(), petID, 0)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Type)
	}
	return out
}

func TestAct_TalkPraisesThePet(t *testing.T) {
	f := newFixture(0.99)
	seedNeutral(t, f, "pet-1")

	resp, err := f.uc.Act(context.Background(), Request{PetID: "pet-1", Action: "talk"})
	if err != nil {
		t.Fatalf("act: %v", err)
	}
	if resp.Result.Action != personality.ActionPraise || resp.Result.Activity != growth.ActivityTalk {
		t.Fatalf("expected talk to resolve to praise, got %+v", resp.Result)
	}
	if resp.State.Personality.Confidence != 53 || resp.State.Emotion.Happiness != 85 {
		t.Fatalf("unexpected state: %+v %+v", resp.State.Personality, resp.State.Emotion)
	}
	if resp.State.Metrics.Interactions != 1 {
		t.Fatalf("expected one interaction, got %d", resp.State.Metrics.Interactions)
	}
	if f.metrics.success["praise"] != 1 {
		t.Fatalf("expected success recorded, got %+v", f.metrics.success)
	}

	stored := f.load("pet-1")
	if stored.Personality.Confidence != 53 || stored.Metrics.Interactions != 1 {
		t.Fatalf("state was not persisted: %+v", stored.Personality)
	}
	types := eventTypes(t, f, "pet-1")
	if len(types) != 1 || types[0] != event.TypeActionApplied {
		t.Fatalf("expected one action_applied event, got %v", types)
	}
}

func TestAct_FormsMemoryWhenRollHits(t *testing.T) {
	f := newFixture(0)
	seedNeutral(t, f, "pet-1")

	resp, err := f.uc.Act(context.Background(), Request{PetID: "pet-1", Action: "comfort", Event: "Hid from the thunder"})
	if err != nil {
		t.Fatalf("act: %v", err)
	}
	if resp.Result.Memory == nil || resp.Result.Memory.Event != "Hid from the thunder" || resp.Result.Memory.ID != "mem-1" {
		t.Fatalf("expected described memory, got %+v", resp.Result.Memory)
	}
	if resp.State.Memories != 1 {
		t.Fatalf("expected memory count 1, got %d", resp.State.Memories)
	}
	types := eventTypes(t, f, "pet-1")
	if len(types) != 2 || types[0] != event.TypeActionApplied || types[1] != event.TypeMemoryFormed {
		t.Fatalf("unexpected events: %v", types)
	}
}

func TestAct_Rejects(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{name: "unknown action", req: Request{PetID: "pet-1", Action: "dance"}, want: ports.ErrUnknownAction},
		{name: "missing pet", req: Request{PetID: "  ", Action: "play"}, want: ports.ErrInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(0.5)
			_, err := f.uc.Act(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if len(eventTypes(t, f, "pet-1")) != 0 {
				t.Fatalf("rejected action must not append events")
			}
		})
	}
}

func TestAct_SaveFailureIsReturned(t *testing.T) {
	f := newFixture(0.99)
	f.uc.States.Store = failingStore{}

	_, err := f.uc.Act(context.Background(), Request{PetID: "pet-1", Action: "feed"})
	if err == nil {
		t.Fatalf("expected save error")
	}
	if f.metrics.failure != 1 || len(f.metrics.success) != 0 {
		t.Fatalf("expected failure recorded, got %+v", f.metrics)
	}
}

func TestSleepWake_TogglesAndBanksSleep(t *testing.T) {
	f := newFixture(0.99)
	seedNeutral(t, f, "pet-1")
	ctx := context.Background()

	resp, err := f.uc.Sleep(ctx, "pet-1")
	if err != nil {
		t.Fatalf("sleep: %v", err)
	}
	if !resp.State.Pet.Sleeping {
		t.Fatalf("expected pet asleep")
	}
	if _, err := f.uc.Sleep(ctx, "pet-1"); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict on second sleep, got %v", err)
	}
	if f.metrics.conflict != 1 {
		t.Fatalf("expected conflict recorded, got %d", f.metrics.conflict)
	}

	f.clock.advance(30 * time.Minute)
	resp, err = f.uc.Wake(ctx, "pet-1")
	if err != nil {
		t.Fatalf("wake: %v", err)
	}
	if resp.State.Pet.Sleeping || resp.State.Metrics.SleepMinutes != 30 {
		t.Fatalf("expected 30 banked sleep minutes, got %+v", resp.State.Metrics)
	}
	if resp.SettledMinutes != 30 {
		t.Fatalf("expected 30 settled minutes, got %d", resp.SettledMinutes)
	}
	if _, err := f.uc.Wake(ctx, "pet-1"); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict on second wake, got %v", err)
	}
}

func TestSleepWake_ShortNapsDoNotInflateSleep(t *testing.T) {
	f := newFixture(0.99)
	seedNeutral(t, f, "pet-1")
	ctx := context.Background()

	var last Response
	for i := 0; i < 30; i++ {
		f.clock.advance(59 * time.Second)
		if _, err := f.uc.Sleep(ctx, "pet-1"); err != nil {
			t.Fatalf("round %d sleep: %v", i, err)
		}
		f.clock.advance(time.Second)
		resp, err := f.uc.Wake(ctx, "pet-1")
		if err != nil {
			t.Fatalf("round %d wake: %v", i, err)
		}
		last = resp
	}

	m := last.State.Metrics
	if m.SleepMinutes != 0 || m.AwakeMinutes != 30 {
		t.Fatalf("expected 30 awake and 0 sleep minutes for one-second naps, got %+v", m)
	}
}

func TestTick_KeepsDecayRemainders(t *testing.T) {
	f := newFixture(0.99)
	seedNeutral(t, f, "pet-1")
	ctx := context.Background()

	if _, err := f.uc.Act(ctx, Request{PetID: "pet-1", Action: "praise"}); err != nil {
		t.Fatalf("act: %v", err)
	}

	f.clock.advance(25 * time.Minute)
	resp, err := f.uc.Tick(ctx, "pet-1")
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if resp.SettledMinutes != 25 || resp.State.Emotion.Happiness != 83 {
		t.Fatalf("expected two decay blocks, got minutes=%d emotion=%+v", resp.SettledMinutes, resp.State.Emotion)
	}

	f.clock.advance(5 * time.Minute)
	resp, err = f.uc.Tick(ctx, "pet-1")
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if resp.State.Emotion.Happiness != 82 {
		t.Fatalf("expected the carried remainder to complete a block, got %d", resp.State.Emotion.Happiness)
	}
	if f.metrics.success["tick"] != 2 {
		t.Fatalf("expected two ticks recorded, got %+v", f.metrics.success)
	}
}

func TestTick_AdvancesPhase(t *testing.T) {
	f := newFixture(0.99)
	seedNeutral(t, f, "pet-1")
	pet := growth.NewPet("pet-1", t0)
	pet.AgeMinutes = 50
	metrics := growth.NewMetrics()
	metrics.SleepMinutes = 40
	metrics.AwakeMinutes = 50
	metrics.Interactions = 10
	seed(t, f, "pet-1", ports.KindPet, pet)
	seed(t, f, "pet-1", ports.KindMetrics, metrics)

	f.clock.advance(10 * time.Minute)
	resp, err := f.uc.Tick(context.Background(), "pet-1")
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if !resp.Transitioned || resp.State.Phase != growth.PhaseBaby || resp.State.PhaseName != "Baby" {
		t.Fatalf("expected transition to baby, got %+v", resp)
	}
	if resp.State.Pet.AgeMinutes != 0 || resp.State.Metrics.Interactions != 0 {
		t.Fatalf("expected fresh phase counters, got %+v", resp.State.Metrics)
	}
	types := eventTypes(t, f, "pet-1")
	if len(types) != 1 || types[0] != event.TypePhaseAdvanced {
		t.Fatalf("expected phase_advanced event, got %v", types)
	}
}

func TestReset_StartsOverWithNewTemperament(t *testing.T) {
	f := newFixture(0.99)
	seedNeutral(t, f, "pet-1")
	ctx := context.Background()

	if _, err := f.uc.Act(ctx, Request{PetID: "pet-1", Action: "praise"}); err != nil {
		t.Fatalf("act: %v", err)
	}
	view, err := f.uc.Reset(ctx, "pet-1")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	// 0.99 draws the top of every 30..80 range.
	want := personality.Temperament{Sensitivity: 80, Energy: 80, Adaptability: 80, Reaction: 80}
	if view.Temperament != want {
		t.Fatalf("expected redrawn temperament %+v, got %+v", want, view.Temperament)
	}
	if view.Personality.Confidence != 50 || view.Metrics.Interactions != 0 || view.Phase != growth.PhaseNewborn {
		t.Fatalf("expected newborn state, got %+v", view)
	}
	if stored := f.load("pet-1"); stored.Temperament != want {
		t.Fatalf("expected temperament persisted, got %+v", stored.Temperament)
	}
	if types := eventTypes(t, f, "pet-1"); types[0] != event.TypePetReset {
		t.Fatalf("expected pet_reset newest, got %v", types)
	}
}
