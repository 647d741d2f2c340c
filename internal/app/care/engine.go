package care

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lovepet/internal/app/petstate"
	"lovepet/internal/app/ports"
	"lovepet/internal/domain/chance"
	"lovepet/internal/domain/event"
	"lovepet/internal/domain/growth"
	"lovepet/internal/domain/personality"
	"lovepet/internal/logging"
)

// Engine applies one action to a snapshot. It never touches storage, so the
// care and kitchen use cases can share it inside their own transactions.
type Engine struct {
	Random chance.Source
	Phases growth.Table
	// NewID names formed memories. Nil uses random UUIDs.
	NewID  func() string
	Logger *slog.Logger
}

type Result struct {
	Action       personality.ActionKind `json:"action"`
	Activity     growth.Activity        `json:"activity,omitempty"`
	Transitioned bool                   `json:"transitioned"`
	Memory       *personality.Memory    `json:"memory,omitempty"`
	HabitFormed  bool                   `json:"habit_formed"`
	// Familiarity is the habit multiplier in effect before this action.
	Familiarity float64       `json:"familiarity"`
	Events      []event.Event `json:"-"`
}

// activities maps action kinds onto the care activity they count as.
var activities = map[personality.ActionKind]growth.Activity{
	personality.ActionFreePlay:       growth.ActivityPlay,
	personality.ActionStructuredPlay: growth.ActivityPlay,
	personality.ActionFeed:           growth.ActivityFeed,
	personality.ActionCook:           growth.ActivityCook,
	personality.ActionClean:          growth.ActivityClean,
	personality.ActionPraise:         growth.ActivityTalk,
	personality.ActionComfort:        growth.ActivityTalk,
	personality.ActionTeach:          growth.ActivityTalk,
}

func ActivityFor(kind personality.ActionKind) (growth.Activity, bool) {
	a, ok := activities[kind]
	return a, ok
}

// Advance settles the time passed since the pet was last seen: growth
// minutes, energy, emotion decay and habit decay.
func (e Engine) Advance(snap petstate.Snapshot, now time.Time) (petstate.Snapshot, int) {
	out := snap
	var minutes int
	out.Pet, out.Metrics, minutes = growth.ProcessTime(snap.Pet, snap.Metrics, now)
	out.Clock, out.Emotion, out.Habits = snap.Clock.Settle(snap.Emotion, snap.Habits, now)
	return out, minutes
}

// Apply fans one action out to personality, emotion, habits, memory and
// growth, then checks for a phase transition. Personality reads the mood
// from before the action; the memory roll reads the mood after it.
func (e Engine) Apply(ctx context.Context, snap petstate.Snapshot, kind personality.ActionKind, description string, now time.Time) (petstate.Snapshot, Result, error) {
	effect, ok := personality.EffectFor(kind)
	if !ok {
		return snap, Result{}, fmt.Errorf("%w: %s", ports.ErrUnknownAction, kind)
	}
	logger := logging.OrDefault(e.Logger)
	out := snap
	res := Result{Action: kind, Familiarity: 1}

	out.Personality = snap.Personality.Apply(effect.Traits, snap.Temperament, snap.Emotion)
	out.Emotion = snap.Emotion.Apply(effect.Emotions, snap.Temperament)
	logger.Log(ctx, logging.LevelTrace, "action deltas applied",
		"pet_id", snap.PetID, "action", kind,
		"personality", out.Personality, "emotion", out.Emotion)

	if effect.Habit != "" {
		res.Familiarity = snap.Habits.Multiplier(effect.Habit)
		out.Habits, res.HabitFormed = snap.Habits.Practice(effect.Habit, now)
		if res.HabitFormed {
			res.Events = append(res.Events, event.New(event.TypeHabitFormed, now, map[string]any{
				"pet_id": snap.PetID,
				"habit":  string(effect.Habit),
			}))
		}
	}

	intensity := out.Emotion.Intensity()
	if personality.ShouldRemember(e.random(), effect.MemoryChance, intensity) {
		if description == "" {
			description = effect.Memory
		}
		m := personality.Memory{
			ID:         e.newID(),
			Event:      description,
			Emotion:    personality.EmotionFor(out.Emotion),
			Intensity:  intensity,
			AgeMinutes: snap.Pet.AgeMinutes,
			CreatedAt:  now,
		}
		out.Memories = snap.Memories.Remember(m)
		res.Memory = &m
		res.Events = append(res.Events, event.New(event.TypeMemoryFormed, now, map[string]any{
			"pet_id":    snap.PetID,
			"memory_id": m.ID,
			"event":     m.Event,
			"emotion":   string(m.Emotion),
			"intensity": m.Intensity,
		}))
		logger.Info("memory formed", "pet_id", snap.PetID, "event", m.Event, "emotion", m.Emotion, "intensity", m.Intensity)
	}

	if activity, ok := ActivityFor(kind); ok {
		res.Activity = activity
		out.Metrics = growth.RecordInteraction(out.Metrics, activity)
	}

	out, res.Transitioned = e.checkTransition(out, now, &res.Events)

	res.Events = append(res.Events, event.New(event.TypeActionApplied, now, map[string]any{
		"pet_id":      snap.PetID,
		"action":      string(kind),
		"state_after": stateAfter(out),
	}))
	return out, res, nil
}

// CheckTransition advances the phase if every condition is met.
func (e Engine) CheckTransition(snap petstate.Snapshot, now time.Time) (petstate.Snapshot, bool, []event.Event) {
	var events []event.Event
	out, moved := e.checkTransition(snap, now, &events)
	return out, moved, events
}

func (e Engine) checkTransition(snap petstate.Snapshot, now time.Time, events *[]event.Event) (petstate.Snapshot, bool) {
	out := snap
	from := snap.Pet.Phase
	var moved bool
	out.Pet, out.Metrics, moved = growth.CheckTransition(snap.Pet, snap.Metrics, e.Table())
	if !moved {
		return out, false
	}
	*events = append(*events, event.New(event.TypePhaseAdvanced, now, map[string]any{
		"pet_id":     snap.PetID,
		"from_phase": int(from),
		"to_phase":   int(out.Pet.Phase),
		"phase_name": e.Table().Name(out.Pet.Phase),
	}))
	logging.OrDefault(e.Logger).Info("phase advanced",
		"pet_id", snap.PetID, "from", e.Table().Name(from), "to", e.Table().Name(out.Pet.Phase))
	return out, true
}

func stateAfter(s petstate.Snapshot) map[string]any {
	return map[string]any{
		"phase":       int(s.Pet.Phase),
		"energy":      s.Pet.Energy,
		"sleeping":    s.Pet.Sleeping,
		"happiness":   s.Emotion.Happiness,
		"frustration": s.Emotion.Frustration,
		"anxiety":     s.Emotion.Anxiety,
		"security":    s.Emotion.Security,
	}
}

// Table falls back to the accelerated phases when none were configured.
func (e Engine) Table() growth.Table {
	if e.Phases[0].Name == "" {
		return growth.AcceleratedTable()
	}
	return e.Phases
}

func (e Engine) random() chance.Source {
	if e.Random == nil {
		return chance.New(0)
	}
	return e.Random
}

func (e Engine) newID() string {
	if e.NewID == nil {
		return uuid.NewString()
	}
	return e.NewID()
}
