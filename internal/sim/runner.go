// Simulation trigger moving the single simulation slot through its states
package sim

import (
	"context"
	"time"

	"swapnet-ops/internal/logging"
	"swapnet-ops/internal/scenario"
)

// DefaultDelay is how long a run stays in the running state.
const DefaultDelay = 2 * time.Second

// SimulationStore is the part of the store a Runner drives.
type SimulationStore interface {
	BeginSimulation(kind string) uint64
	CompleteSimulation(gen uint64, output map[string]any) bool
}

// Runner moves the simulation idle → running → completed after a fixed delay.
// Runs cannot be cancelled; a reset or a newer run makes a pending completion a no-op.
type Runner struct {
	store     SimulationStore
	catalog   scenario.Catalog
	delay     time.Duration
	afterFunc func(time.Duration, func())
}

// NewRunner creates a Runner. A nil catalog uses the built-in scenarios and
// a non-positive delay uses DefaultDelay.
func NewRunner(store SimulationStore, catalog scenario.Catalog, delay time.Duration) *Runner {
	if catalog == nil {
		catalog = scenario.BuiltIn()
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Runner{
		store:   store,
		catalog: catalog,
		delay:   delay,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// SetAfterFunc replaces the timer used to schedule completion.
func (r *Runner) SetAfterFunc(fn func(time.Duration, func())) {
	r.afterFunc = fn
}

// Delay returns the configured running time.
func (r *Runner) Delay() time.Duration {
	return r.delay
}

// Run starts a simulation of the given kind. The state is running when Run
// returns and becomes completed once the delay elapses.
func (r *Runner) Run(ctx context.Context, kind string) error {
	out, err := r.catalog.Output(kind)
	if err != nil {
		return err
	}
	log := logging.FromContext(ctx).With("kind", kind)
	gen := r.store.BeginSimulation(kind)
	log.Info("simulation started", "run", gen, "delay", r.delay)
	r.afterFunc(r.delay, func() {
		if r.store.CompleteSimulation(gen, out) {
			log.Info("simulation completed", "run", gen)
			return
		}
		log.Debug("simulation completion superseded", "run", gen)
	})
	return nil
}
