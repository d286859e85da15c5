// Package store holds the in-memory state of the swap network.
//
// Store carries the full mutation surface. Dashboards should not hold a
// *Store directly; the access package hands out role facades that only
// carry the methods each role may call.
package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"swapnet-ops/internal/journal"
	"swapnet-ops/internal/station"
)

// ErrInvalidStatus is returned when a status transition names a value the action does not accept.
var ErrInvalidStatus = errors.New("invalid status")

// Store is the process-wide state container. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	seed      station.Seed
	stations  []station.Station
	baselines map[string]station.Baseline
	states    []station.OperationalState
	failures  []station.FailureEvent
	actions   []station.MaintenanceAction
	recs      []station.NetworkRecommendation
	sim       station.SimulationState
	simGen    uint64

	journal journal.Writer
	seq     uint64
	log     *slog.Logger
	now     func() time.Time
	rand    *rand.Rand
	newID   func(prefix string) string

	// pending holds events queued under mu; jmu serializes their writes in Seq order.
	pmu     sync.Mutex
	pending []journal.Event
	jmu     sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRand sets the random source used for derived uptime and efficiency.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) { s.rand = r }
}

// WithJournal sends every action to w.
func WithJournal(w journal.Writer) Option {
	return func(s *Store) { s.journal = w }
}

// WithLogger sets the logger used for journal failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithIDGenerator overrides how ids are generated for records added without one.
func WithIDGenerator(fn func(prefix string) string) Option {
	return func(s *Store) { s.newID = fn }
}

// New creates a store initialised from seed.
func New(seed station.Seed, opts ...Option) *Store {
	s := &Store{
		seed: seed,
		log:  slog.Default(),
		now:  time.Now,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		newID: func(prefix string) string {
			return prefix + "-" + uuid.New().String()[:8]
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

// load resets every collection from the seed. Caller holds mu or owns s exclusively.
func (s *Store) load() {
	s.stations = make([]station.Station, 0, len(s.seed.Stations))
	for _, st := range s.seed.Stations {
		if st.TotalChargers < st.ActiveChargers {
			st.TotalChargers = st.ActiveChargers
		}
		s.stations = append(s.stations, st)
	}
	s.baselines = make(map[string]station.Baseline, len(s.seed.Baselines))
	for _, b := range s.seed.Baselines {
		s.baselines[b.StationID] = b
	}
	s.failures = make([]station.FailureEvent, 0, len(s.seed.Failures))
	for _, f := range s.seed.Failures {
		s.failures = append(s.failures, f.Clone())
	}
	s.actions = append(make([]station.MaintenanceAction, 0, len(s.seed.Maintenance)), s.seed.Maintenance...)
	s.recs = make([]station.NetworkRecommendation, 0, len(s.seed.Recommendations))
	for _, r := range s.seed.Recommendations {
		if r.Status == "" {
			r.Status = station.RecPending
		}
		s.recs = append(s.recs, r.Clone())
	}
	s.sim = station.IdleSimulation()
	s.simGen++
	s.derive()
}

// derive rebuilds every operational state from the station list and baselines.
func (s *Store) derive() {
	now := s.now().UTC()
	states := make([]station.OperationalState, 0, len(s.stations))
	for _, st := range s.stations {
		b, ok := s.baselines[st.ID]
		status := station.StatusOnline
		alerts := 0
		if ok {
			if b.Status.Valid() {
				status = b.Status
			}
			alerts = b.Alerts
		}
		states = append(states, station.OperationalState{
			StationID:        st.ID,
			StationName:      st.Name,
			Status:           status,
			ActiveChargers:   st.ActiveChargers,
			TotalChargers:    st.TotalChargers,
			CurrentQueue:     st.QueueLength,
			BatteryInventory: st.ChargedBatteryInventory,
			LastUpdate:       now,
			Alerts:           alerts,
			Uptime:           95 + s.rand.Float64()*4.9,
			PerformanceMetrics: station.PerformanceMetrics{
				Throughput:      int(math.Floor(st.ArrivalRate * 20)),
				Efficiency:      70 + s.rand.Float64()*25,
				AverageWaitTime: float64(st.QueueLength) * 0.8,
			},
		})
	}
	s.states = states
}

// emit queues an action for the journal. Caller holds mu; the event is
// written by unlock once mu is released.
func (s *Store) emit(actor journal.Actor, action, target string, matched bool, payload any) {
	if s.journal == nil {
		return
	}
	s.seq++
	ev := journal.Event{
		Seq:       s.seq,
		Action:    action,
		Actor:     actor,
		TargetID:  target,
		Matched:   matched,
		Timestamp: s.now().UTC(),
	}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			s.log.Error("journal payload encode failed", "action", action, "err", err)
		} else {
			ev.Payload = data
		}
	}
	s.pmu.Lock()
	s.pending = append(s.pending, ev)
	s.pmu.Unlock()
}

// unlock releases mu and then writes the events queued while it was held.
func (s *Store) unlock() {
	s.mu.Unlock()
	s.flush()
}

func (s *Store) flush() {
	if s.journal == nil {
		return
	}
	s.jmu.Lock()
	defer s.jmu.Unlock()
	s.pmu.Lock()
	events := s.pending
	s.pending = nil
	s.pmu.Unlock()
	for _, ev := range events {
		if err := s.journal.WriteEvent(ev); err != nil {
			s.log.Error("journal write failed", "action", ev.Action, "seq", ev.Seq, "err", err)
		}
	}
}

// Now returns the store clock reading.
func (s *Store) Now() time.Time {
	return s.now()
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() station.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return station.Snapshot{
		Stations:          s.stations,
		OperationalStates: s.states,
		Failures:          s.failures,
		Maintenance:       s.actions,
		Recommendations:   s.recs,
		Simulation:        s.sim,
	}.Clone()
}
