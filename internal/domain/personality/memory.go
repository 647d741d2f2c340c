package personality

import (
	"math"
	"slices"
	"time"

	"lovepet/internal/domain/chance"
)

const (
	MaxMemories    = 50
	RecentMemories = 5

	memoryInfluenceCap     = 20
	memoryAgeHalfWeightMin = 10000
)

type MemoryEmotion string

const (
	MemoryJoy         MemoryEmotion = "joy"
	MemorySadness     MemoryEmotion = "sadness"
	MemoryFear        MemoryEmotion = "fear"
	MemoryPride       MemoryEmotion = "pride"
	MemoryFrustration MemoryEmotion = "frustration"
	MemoryLove        MemoryEmotion = "love"
)

func (e MemoryEmotion) positive() bool {
	return e == MemoryJoy || e == MemoryPride || e == MemoryLove
}

func (e MemoryEmotion) negative() bool {
	return e == MemorySadness || e == MemoryFear || e == MemoryFrustration
}

type Memory struct {
	ID         string        `json:"id"`
	Event      string        `json:"event"`
	Emotion    MemoryEmotion `json:"emotion"`
	Intensity  int           `json:"intensity"`
	AgeMinutes int           `json:"age_minutes"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Memories is ordered by salience once trimmed, insertion order otherwise.
type Memories []Memory

// ShouldRemember rolls the memory gate. Strong feelings make an event stickier.
func ShouldRemember(src chance.Source, baseChance float64, intensity int) bool {
	if baseChance <= 0 {
		return false
	}
	return src.Float64() < baseChance*(1+float64(intensity)/100)
}

// EmotionFor picks the feeling a memory formed in state carries.
func EmotionFor(state EmotionalState) MemoryEmotion {
	switch {
	case state.Happiness > 60:
		return MemoryJoy
	case state.Frustration > 60:
		return MemoryFrustration
	case state.Security < 40:
		return MemoryFear
	default:
		return MemoryLove
	}
}

// Remember appends m and, past capacity, keeps the most intense memories.
// Ties keep their original order.
func (ms Memories) Remember(m Memory) Memories {
	m.Intensity = clamp(m.Intensity, TraitMin, TraitMax)
	out := make(Memories, len(ms), len(ms)+1)
	copy(out, ms)
	out = append(out, m)
	if len(out) <= MaxMemories {
		return out
	}
	slices.SortStableFunc(out, func(a, b Memory) int {
		return b.Intensity - a.Intensity
	})
	return out[:MaxMemories]
}

// Influence weighs the memories into a single bias in [-20,20]. Older
// memories count less and painful ones count half.
func (ms Memories) Influence() float64 {
	total := 0.0
	for _, m := range ms {
		weight := 1 / (1 + float64(m.AgeMinutes)/memoryAgeHalfWeightMin)
		base := float64(m.Intensity) / 10 * weight
		switch {
		case m.Emotion.positive():
			total += base
		case m.Emotion.negative():
			total -= base * 0.5
		}
	}
	return math.Max(-memoryInfluenceCap, math.Min(memoryInfluenceCap, total))
}

// Recent returns up to n memories, newest first.
func (ms Memories) Recent(n int) Memories {
	out := slices.Clone(ms)
	slices.SortStableFunc(out, func(a, b Memory) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func (ms Memories) Valid() bool {
	if len(ms) > MaxMemories {
		return false
	}
	for _, m := range ms {
		if m.Intensity < TraitMin || m.Intensity > TraitMax {
			return false
		}
	}
	return true
}
