package retention

import (
	"context"
	"math/rand"
	"time"

	"github.com/GYRAG/beetkar-hub/internal/config"
	"github.com/GYRAG/beetkar-hub/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// EventSwept is emitted after every completed sweep with the deleted row
// count as its argument.
const EventSwept = "retention.swept"

// Sweeper enforces the retention horizon on stored readings. It runs two
// triggers over the same sweep: a timer-driven background loop, and a
// probabilistic hook evaluated once per successful ingest. Sweep failures
// are logged and emitted, never returned into the request path.
type Sweeper struct {
	readings    repository.ReadingRepository
	horizon     time.Duration
	probability float64
	interval    time.Duration
	events      *nuts.EventEmitter
	rng         func() float64
}

// New creates a Sweeper from the retention configuration.
func New(readings repository.ReadingRepository, cfg config.RetentionConfig) *Sweeper {
	return &Sweeper{
		readings:    readings,
		horizon:     cfg.Horizon(),
		probability: cfg.Probability,
		interval:    cfg.Interval,
		events:      nuts.NewEventEmitter(),
		rng:         rand.Float64,
	}
}

// Run drives the timer-based sweeps until the context is cancelled. It
// never sweeps immediately on start; the first pass happens after one full
// interval.
func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		nuts.L.Warnf("[Retention] Background sweep disabled (interval %v)", s.interval)
		return
	}
	nuts.L.Infof("[Retention] Background sweep every %v, horizon %v", s.interval, s.horizon)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			nuts.L.Infof("[Retention] Background sweep stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// MaybeSweep rolls the per-ingest probability and, on a hit, sweeps in the
// background. It returns immediately either way so an ingest response is
// never delayed or failed by cleanup.
func (s *Sweeper) MaybeSweep() {
	if s.rng() >= s.probability {
		return
	}
	// Deliberately not the request context: the sweep outlives the request.
	go s.sweep(context.Background())
}

func (s *Sweeper) sweep(ctx context.Context) {
	before := time.Now().UTC().Add(-s.horizon)
	deleted, err := s.readings.DeleteOlderThan(ctx, before)
	if err != nil {
		nuts.L.Errorf("[Retention] Sweep failed: %v", err)
		return
	}
	if err := s.events.Emit(EventSwept, deleted); err != nil {
		nuts.L.Errorf("[Retention] Failed to notify sweep listeners: %v", err)
	}
}

// OnSweep registers a callback invoked with the deleted row count after
// each successful sweep. The listener signature must stay func(int64):
// the emitter dispatches by exact argument types.
func (s *Sweeper) OnSweep(handler func(deleted int64)) {
	s.events.On(EventSwept, "retention_handler", func(deleted int64) {
		handler(deleted)
	})
}
