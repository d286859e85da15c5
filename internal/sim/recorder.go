package sim

import (
	"context"
	"time"

	"swapnet-ops/internal/logging"
	"swapnet-ops/internal/station"
)

// DefaultInterval is the recording interval used when none is given.
const DefaultInterval = 10 * time.Second

// StateSource supplies the operational states to record.
type StateSource interface {
	OperationalStates() []station.OperationalState
}

// Recorder periodically writes every station's operational state.
type Recorder struct {
	networkID string
	source    StateSource
	writer    StatusWriter
	interval  time.Duration
	now       func() time.Time
}

// NewRecorder creates a Recorder writing to w every interval. A non-positive
// interval uses DefaultInterval.
func NewRecorder(networkID string, source StateSource, w StatusWriter, interval time.Duration) *Recorder {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Recorder{
		networkID: networkID,
		source:    source,
		writer:    w,
		interval:  interval,
		now:       time.Now,
	}
}

// Run ticks until ctx is done.
func (r *Recorder) Run(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Info("starting status recorder", "interval", r.interval, "network_id", r.networkID)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.Tick(ctx)
		case <-ctx.Done():
			log.Info("stopping status recorder")
			return
		}
	}
}

// Tick writes one row per operational state.
func (r *Recorder) Tick(ctx context.Context) {
	log := logging.FromContext(ctx)
	states := r.source.OperationalStates()
	if len(states) == 0 {
		return
	}
	ts := r.now().UTC()
	rows := make([]StatusRow, 0, len(states))
	for _, o := range states {
		rows = append(rows, NewStatusRow(r.networkID, o, ts))
	}

	if bw, ok := r.writer.(batchStatusWriter); ok {
		if err := bw.WriteStatuses(rows); err != nil {
			log.Error("status batch write failed", "err", err)
		}
		return
	}
	for _, row := range rows {
		if err := r.writer.WriteStatus(row); err != nil {
			log.Error("status write failed", "station_id", row.StationID, "err", err)
		}
	}
}
