package personality

import "time"

// DecayClock remembers how far emotion and habit decay have been settled so
// frequent ticks do not lose their sub-step remainders.
type DecayClock struct {
	EmotionAt time.Time `json:"emotion_at"`
	HabitsAt  time.Time `json:"habits_at"`
}

func NewDecayClock(now time.Time) DecayClock {
	return DecayClock{EmotionAt: now, HabitsAt: now}
}

func (c DecayClock) Valid() bool {
	return !c.EmotionAt.IsZero() && !c.HabitsAt.IsZero()
}

// Settle decays the emotional state and habits for the whole steps elapsed
// since the cursors and advances each cursor by exactly the steps consumed.
func (c DecayClock) Settle(state EmotionalState, habits Habits, now time.Time) (DecayClock, EmotionalState, Habits) {
	out := c
	emotionMinutes := wholeMinutes(c.EmotionAt, now)
	if blocks := DecayBlocks(emotionMinutes); blocks > 0 {
		state = state.Decay(emotionMinutes)
		out.EmotionAt = c.EmotionAt.Add(time.Duration(blocks*emotionDecayBlockMinutes) * time.Minute)
	}
	habitMinutes := wholeMinutes(c.HabitsAt, now)
	if hours := DecayHours(habitMinutes); hours > 0 {
		habits = habits.Decay(habitMinutes)
		out.HabitsAt = c.HabitsAt.Add(time.Duration(hours) * time.Hour)
	}
	return out, state, habits
}

func wholeMinutes(from, to time.Time) int {
	d := to.Sub(from)
	if d <= 0 {
		return 0
	}
	return int(d / time.Minute)
}
