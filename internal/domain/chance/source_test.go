package chance

import "testing"

func TestSeededIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 20; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestRangeStaysInclusive(t *testing.T) {
	src := New(7)
	seenMin, seenMax := false, false
	for i := 0; i < 5000; i++ {
		v := Range(src, 30, 80)
		if v < 30 || v > 80 {
			t.Fatalf("value out of range: %d", v)
		}
		seenMin = seenMin || v == 30
		seenMax = seenMax || v == 80
	}
	if !seenMin || !seenMax {
		t.Fatalf("expected both bounds to be reachable, min=%v max=%v", seenMin, seenMax)
	}
}

func TestSequenceCyclesAndScales(t *testing.T) {
	s := NewSequence(0.0, 0.5, 0.999)
	if got := s.IntN(10); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := s.IntN(10); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := s.IntN(10); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
	if got := s.Float64(); got != 0.0 {
		t.Fatalf("expected sequence to cycle, got %v", got)
	}
}
