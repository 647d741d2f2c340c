package inmemory

import (
	"sync"
)

type Snapshot struct {
	ActionTotal     uint64            `json:"action_total"`
	ActionSuccess   uint64            `json:"action_success"`
	ActionConflict  uint64            `json:"action_conflict"`
	ActionFailure   uint64            `json:"action_failure"`
	DishRejected    uint64            `json:"dish_rejected"`
	ByOutcome       map[string]uint64 `json:"by_outcome"`
	RejectionReason map[string]uint64 `json:"by_rejection_reason"`
}

// Recorder counts use-case outcomes for the KPI endpoint. Counters live for
// the life of the process.
type Recorder struct {
	mu         sync.Mutex
	success    uint64
	conflict   uint64
	failure    uint64
	rejected   uint64
	byOutcome  map[string]uint64
	byRejected map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOutcome:  map[string]uint64{},
		byRejected: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byOutcome[outcome]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

// RecordRejection counts a dish the pet refused. A refusal completed the
// request, so it also counts toward the total.
func (r *Recorder) RecordRejection(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
	r.byRejected[reason]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionSuccess:   r.success,
		ActionConflict:  r.conflict,
		ActionFailure:   r.failure,
		DishRejected:    r.rejected,
		ActionTotal:     r.success + r.conflict + r.failure + r.rejected,
		ByOutcome:       make(map[string]uint64, len(r.byOutcome)),
		RejectionReason: make(map[string]uint64, len(r.byRejected)),
	}
	for k, v := range r.byOutcome {
		out.ByOutcome[k] = v
	}
	for k, v := range r.byRejected {
		out.RejectionReason[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
