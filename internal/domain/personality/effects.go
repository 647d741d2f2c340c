package personality

import (
	"slices"
	"strings"
)

type ActionKind string

const (
	ActionFreePlay       ActionKind = "free_play"
	ActionStructuredPlay ActionKind = "structured_play"
	ActionCook           ActionKind = "cook"
	ActionFeed           ActionKind = "feed"
	ActionClean          ActionKind = "clean"
	ActionSleep          ActionKind = "sleep"
	ActionWake           ActionKind = "wake"
	ActionPraise         ActionKind = "praise"
	ActionIgnore         ActionKind = "ignore"
	ActionComfort        ActionKind = "comfort"
	ActionTeach          ActionKind = "teach"
)

func AllActionKinds() []ActionKind {
	return []ActionKind{
		ActionFreePlay, ActionStructuredPlay, ActionCook, ActionFeed,
		ActionClean, ActionSleep, ActionWake, ActionPraise,
		ActionIgnore, ActionComfort, ActionTeach,
	}
}

// Effect is what one action does to the pet's inner life.
type Effect struct {
	Traits   map[Trait]int
	Emotions map[Channel]int
	// Habit is empty when the action builds no habit.
	Habit HabitType
	// MemoryChance is the base chance to remember the action; 0 never does.
	MemoryChance float64
	// Memory is the default description for a memory formed by the action.
	Memory string
}

func effectRegistry() map[ActionKind]Effect {
	return map[ActionKind]Effect{
		ActionFreePlay: {
			Traits:       map[Trait]int{TraitImagination: 3, TraitSociability: 2, TraitDiscipline: -1, TraitSelfRegulation: -1},
			Emotions:     map[Channel]int{ChannelHappiness: 10, ChannelFrustration: -5},
			Habit:        HabitPlay,
			MemoryChance: 0.1,
			Memory:       "Played freely and had a great time",
		},
		ActionStructuredPlay: {
			Traits:       map[Trait]int{TraitDiscipline: 2, TraitSelfRegulation: 2, TraitPersistence: 1},
			Emotions:     map[Channel]int{ChannelHappiness: 5, ChannelFrustration: 2},
			Habit:        HabitPlay,
			MemoryChance: 0.05,
			Memory:       "Played a game with rules",
		},
		ActionCook: {
			Traits:       map[Trait]int{TraitCuriosity: 2, TraitPersistence: 2, TraitAutonomy: 1},
			Emotions:     map[Channel]int{ChannelHappiness: 8, ChannelSecurity: 5},
			Habit:        HabitCook,
			MemoryChance: 0.2,
			Memory:       "Cooked something together",
		},
		ActionFeed: {
			Traits:       map[Trait]int{TraitConfidence: 1, TraitEmpathy: 1},
			Emotions:     map[Channel]int{ChannelHappiness: 5, ChannelSecurity: 3},
			Habit:        HabitCare,
			MemoryChance: 0.05,
			Memory:       "Was fed with love",
		},
		ActionClean: {
			Traits:       map[Trait]int{TraitDiscipline: 2, TraitSelfRegulation: 1},
			Emotions:     map[Channel]int{ChannelFrustration: 2, ChannelSecurity: 2},
			Habit:        HabitRoutine,
			MemoryChance: 0.02,
			Memory:       "Got a bath",
		},
		ActionSleep: {
			Traits:   map[Trait]int{TraitSelfRegulation: 1},
			Emotions: map[Channel]int{ChannelAnxiety: -10, ChannelFrustration: -5},
			Habit:    HabitRoutine,
		},
		ActionWake: {
			Emotions: map[Channel]int{ChannelHappiness: 5},
		},
		ActionPraise: {
			Traits:       map[Trait]int{TraitConfidence: 3, TraitPersistence: 2},
			Emotions:     map[Channel]int{ChannelHappiness: 15, ChannelSecurity: 10},
			MemoryChance: 0.3,
			Memory:       "Was praised",
		},
		ActionIgnore: {
			Traits:       map[Trait]int{TraitConfidence: -2, TraitSociability: -1, TraitAutonomy: 1},
			Emotions:     map[Channel]int{ChannelHappiness: -10, ChannelSecurity: -8, ChannelAnxiety: 5},
			MemoryChance: 0.4,
			Memory:       "Felt ignored",
		},
		ActionComfort: {
			Traits:       map[Trait]int{TraitConfidence: 2, TraitEmpathy: 2},
			Emotions:     map[Channel]int{ChannelFrustration: -10, ChannelAnxiety: -10, ChannelSecurity: 15},
			MemoryChance: 0.25,
			Memory:       "Was comforted when it needed it",
		},
		ActionTeach: {
			Traits:       map[Trait]int{TraitCuriosity: 3, TraitDiscipline: 2, TraitPersistence: 1},
			Emotions:     map[Channel]int{ChannelFrustration: 3},
			Habit:        HabitStudy,
			MemoryChance: 0.15,
			Memory:       "Learned something new",
		},
	}
}

var effects = effectRegistry()

func EffectFor(kind ActionKind) (Effect, bool) {
	e, ok := effects[kind]
	return e, ok
}

func ParseActionKind(raw string) (ActionKind, bool) {
	kind := ActionKind(strings.ToLower(strings.TrimSpace(raw)))
	if !slices.Contains(AllActionKinds(), kind) {
		return "", false
	}
	return kind, true
}

// gameActions maps the short verbs a caretaker uses onto action kinds.
var gameActions = map[string]ActionKind{
	"play":  ActionFreePlay,
	"feed":  ActionFeed,
	"cook":  ActionCook,
	"clean": ActionClean,
	"sleep": ActionSleep,
	"wake":  ActionWake,
	"talk":  ActionPraise,
}

// ResolveAction accepts either an action kind or a caretaker verb.
func ResolveAction(raw string) (ActionKind, bool) {
	if kind, ok := ParseActionKind(raw); ok {
		return kind, true
	}
	kind, ok := gameActions[strings.ToLower(strings.TrimSpace(raw))]
	return kind, ok
}
