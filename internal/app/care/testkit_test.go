package care

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lovepet/internal/adapter/repo/memory"
	"lovepet/internal/app/petstate"
	"lovepet/internal/app/ports"
	"lovepet/internal/domain/chance"
	"lovepet/internal/domain/growth"
)

var t0 = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func (c *clock) advance(d time.Duration) { c.now = c.now.Add(d) }

type stubMetrics struct {
	success   map[string]int
	conflict  int
	failure   int
	rejection map[string]int
}

func newStubMetrics() *stubMetrics {
	return &stubMetrics{success: map[string]int{}, rejection: map[string]int{}}
}

func (m *stubMetrics) RecordSuccess(outcome string)  { m.success[outcome]++ }
func (m *stubMetrics) RecordConflict()               { m.conflict++ }
func (m *stubMetrics) RecordFailure()                { m.failure++ }
func (m *stubMetrics) RecordRejection(reason string) { m.rejection[reason]++ }

type failingStore struct{}

func (failingStore) Get(context.Context, string, ports.EntityKind) ([]byte, error) {
	return nil, ports.ErrNotFound
}

func (failingStore) Put(context.Context, string, ports.EntityKind, []byte) error {
	return errors.New("disk full")
}

type fixture struct {
	uc      UseCase
	store   *memory.Store
	events  memory.EventRepo
	metrics *stubMetrics
	clock   *clock
}

// newFixture wires the use case over the memory store. Random draws come
// from rolls, cycling.
func newFixture(rolls ...float64) fixture {
	store := memory.NewStore()
	events := memory.NewEventRepo(store)
	metrics := newStubMetrics()
	clk := &clock{now: t0}
	src := chance.NewSequence(rolls...)
	n := 0
	uc := UseCase{
		TxManager: memory.NewTxManager(store),
		States: petstate.Repository{
			Store:  memory.NewEntityRepo(store),
			Random: src,
		},
		EventRepo: events,
		Metrics:   metrics,
		Engine: Engine{
			Random: src,
			Phases: growth.AcceleratedTable(),
			NewID: func() string {
				n++
				return fmt.Sprintf("mem-%d", n)
			},
		},
		Now: clk.Now,
	}
	return fixture{uc: uc, store: store, events: events, metrics: metrics, clock: clk}
}

func (f fixture) load(petID string) petstate.Snapshot {
	return f.uc.States.Load(context.Background(), petID, f.clock.now)
}
