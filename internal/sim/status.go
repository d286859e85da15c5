package sim

import (
	"time"

	"swapnet-ops/internal/station"
)

// StatusRow is one recorded operational state of a station.
type StatusRow struct {
	NetworkID        string    `json:"network_id"` // TAG
	StationID        string    `json:"station_id"` // TAG
	StationName      string    `json:"station_name"`
	Status           string    `json:"status"`
	ActiveChargers   int       `json:"active_chargers"`
	TotalChargers    int       `json:"total_chargers"`
	Queue            int       `json:"queue"`
	BatteryInventory int       `json:"battery_inventory"`
	Alerts           int       `json:"alerts"`
	Uptime           float64   `json:"uptime"`
	Efficiency       float64   `json:"efficiency"`
	Throughput       int       `json:"throughput"`
	Timestamp        time.Time `json:"ts"` // TIME INDEX
}

// NewStatusRow converts an operational state into a row stamped with ts.
func NewStatusRow(networkID string, o station.OperationalState, ts time.Time) StatusRow {
	return StatusRow{
		NetworkID:        networkID,
		StationID:        o.StationID,
		StationName:      o.StationName,
		Status:           string(o.Status),
		ActiveChargers:   o.ActiveChargers,
		TotalChargers:    o.TotalChargers,
		Queue:            o.CurrentQueue,
		BatteryInventory: o.BatteryInventory,
		Alerts:           o.Alerts,
		Uptime:           o.Uptime,
		Efficiency:       o.PerformanceMetrics.Efficiency,
		Throughput:       o.PerformanceMetrics.Throughput,
		Timestamp:        ts,
	}
}

// StatusWriter handles station status rows.
type StatusWriter interface {
	WriteStatus(StatusRow) error
}

// Optional: writers may support batch mode for status rows.
type batchStatusWriter interface {
	WriteStatuses([]StatusRow) error
}
