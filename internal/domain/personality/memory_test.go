package personality

import (
	"fmt"
	"math"
	"testing"
	"time"

	"lovepet/internal/domain/chance"
)

func TestShouldRemember(t *testing.T) {
	// 0.1 * (1 + 50/100) = 0.15
	if !ShouldRemember(chance.NewSequence(0.149), 0.1, 50) {
		t.Fatalf("expected roll under adjusted chance to pass")
	}
	if ShouldRemember(chance.NewSequence(0.151), 0.1, 50) {
		t.Fatalf("expected roll over adjusted chance to fail")
	}
	if ShouldRemember(chance.NewSequence(0), 0, 100) {
		t.Fatalf("zero base chance must never remember")
	}
}

func TestEmotionFor(t *testing.T) {
	cases := []struct {
		state EmotionalState
		want  MemoryEmotion
	}{
		{EmotionalState{Happiness: 70, Frustration: 80, Security: 10}, MemoryJoy},
		{EmotionalState{Happiness: 50, Frustration: 80, Security: 10}, MemoryFrustration},
		{EmotionalState{Happiness: 50, Frustration: 20, Security: 30}, MemoryFear},
		{EmotionalState{Happiness: 50, Frustration: 20, Security: 60}, MemoryLove},
	}
	for _, tc := range cases {
		if got := EmotionFor(tc.state); got != tc.want {
			t.Fatalf("state=%+v got=%q want=%q", tc.state, got, tc.want)
		}
	}
}

func TestRemember_NeverExceedsCapacity(t *testing.T) {
	var ms Memories
	for i := 0; i < MaxMemories; i++ {
		ms = ms.Remember(Memory{ID: fmt.Sprintf("m-%d", i), Intensity: 10 + i%40})
	}
	if len(ms) != MaxMemories {
		t.Fatalf("expected %d memories, got %d", MaxMemories, len(ms))
	}

	// m-0 is one of the two weakest (intensity 10) and the first in order.
	ms = ms.Remember(Memory{ID: "vivid", Intensity: 90})
	if len(ms) != MaxMemories {
		t.Fatalf("expected capacity kept, got %d", len(ms))
	}
	if ms[0].ID != "vivid" {
		t.Fatalf("expected strongest memory first, got %q", ms[0].ID)
	}
	var weakest int
	for _, m := range ms {
		if m.Intensity == 10 {
			weakest++
			if m.ID != "m-0" {
				t.Fatalf("expected earlier tie to survive, kept %q", m.ID)
			}
		}
	}
	if weakest != 1 {
		t.Fatalf("expected exactly one weakest memory left, got %d", weakest)
	}
}

func TestMemoryInfluence(t *testing.T) {
	ms := Memories{
		{Emotion: MemoryJoy, Intensity: 50, AgeMinutes: 0},
		{Emotion: MemoryFear, Intensity: 40, AgeMinutes: 10000},
	}
	// 5 - 0.5 * (4 * 0.5) = 4
	if got := ms.Influence(); math.Abs(got-4) > 1e-9 {
		t.Fatalf("expected 4, got %v", got)
	}

	var many Memories
	for i := 0; i < 30; i++ {
		many = append(many, Memory{Emotion: MemoryPride, Intensity: 100})
	}
	if got := many.Influence(); got != 20 {
		t.Fatalf("expected cap 20, got %v", got)
	}
}

func TestRecentMemories(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	var ms Memories
	for i := 0; i < 8; i++ {
		ms = append(ms, Memory{ID: fmt.Sprintf("m-%d", i), CreatedAt: base.Add(time.Duration(i) * time.Minute)})
	}
	got := ms.Recent(RecentMemories)
	if len(got) != RecentMemories || got[0].ID != "m-7" || got[4].ID != "m-3" {
		t.Fatalf("unexpected recent memories: %+v", got)
	}
	if ms[0].ID != "m-0" {
		t.Fatalf("recent reordered the input")
	}
}
