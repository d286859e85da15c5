// Record types shared by the store, selectors and views
package station

import "time"

// Station is the admin-editable configuration of a swap location.
type Station struct {
	ID                      string  `json:"id" yaml:"id"`
	Name                    string  `json:"name" yaml:"name"`
	QueueLength             int     `json:"queueLength" yaml:"queue_length"`
	ArrivalRate             float64 `json:"arrivalRate" yaml:"arrival_rate"`
	ActiveChargers          int     `json:"activeChargers" yaml:"active_chargers"`
	TotalChargers           int     `json:"totalChargers" yaml:"total_chargers"`
	ChargedBatteryInventory int     `json:"chargedBatteryInventory" yaml:"charged_battery_inventory"`
	Temperature             float64 `json:"temperature" yaml:"temperature"`
	StationLoad             float64 `json:"stationLoad" yaml:"station_load"` // percent
}

// StationPatch is a partial station update. Nil fields are left unchanged.
type StationPatch struct {
	Name                    *string  `json:"name,omitempty"`
	QueueLength             *int     `json:"queueLength,omitempty"`
	ArrivalRate             *float64 `json:"arrivalRate,omitempty"`
	ActiveChargers          *int     `json:"activeChargers,omitempty"`
	TotalChargers           *int     `json:"totalChargers,omitempty"`
	ChargedBatteryInventory *int     `json:"chargedBatteryInventory,omitempty"`
	Temperature             *float64 `json:"temperature,omitempty"`
	StationLoad             *float64 `json:"stationLoad,omitempty"`
}

// Apply returns a copy of s with the non-nil patch fields merged in.
func (p StationPatch) Apply(s Station) Station {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.QueueLength != nil {
		s.QueueLength = *p.QueueLength
	}
	if p.ArrivalRate != nil {
		s.ArrivalRate = *p.ArrivalRate
	}
	if p.ActiveChargers != nil {
		s.ActiveChargers = *p.ActiveChargers
	}
	if p.TotalChargers != nil {
		s.TotalChargers = *p.TotalChargers
	}
	if p.ChargedBatteryInventory != nil {
		s.ChargedBatteryInventory = *p.ChargedBatteryInventory
	}
	if p.Temperature != nil {
		s.Temperature = *p.Temperature
	}
	if p.StationLoad != nil {
		s.StationLoad = *p.StationLoad
	}
	return s
}

// StationUpdate pairs a station id with a patch for bulk updates.
type StationUpdate struct {
	ID    string       `json:"id"`
	Patch StationPatch `json:"data"`
}

// Status is the live status of a station.
type Status string

// Station status constants.
const (
	StatusOnline   Status = "online"
	StatusDegraded Status = "degraded"
	StatusOffline  Status = "offline"
)

// Valid reports whether s is a known station status.
func (s Status) Valid() bool {
	switch s {
	case StatusOnline, StatusDegraded, StatusOffline:
		return true
	}
	return false
}

// PerformanceMetrics holds the derived throughput figures of a station.
type PerformanceMetrics struct {
	Throughput      int     `json:"throughput"`
	Efficiency      float64 `json:"efficiency"`
	AverageWaitTime float64 `json:"averageWaitTime"`
}

// OperationalState is the derived live view of one station.
type OperationalState struct {
	StationID          string             `json:"stationId"`
	StationName        string             `json:"stationName"`
	Status             Status             `json:"status"`
	ActiveChargers     int                `json:"activeChargers"`
	TotalChargers      int                `json:"totalChargers"`
	CurrentQueue       int                `json:"currentQueue"`
	BatteryInventory   int                `json:"batteryInventory"`
	LastUpdate         time.Time          `json:"lastUpdate"`
	Alerts             int                `json:"alerts"`
	Uptime             float64            `json:"uptime"`
	PerformanceMetrics PerformanceMetrics `json:"performanceMetrics"`
}

// OperationalPatch is an admin override of an operational state.
type OperationalPatch struct {
	Status             *Status             `json:"status,omitempty"`
	Alerts             *int                `json:"alerts,omitempty"`
	Uptime             *float64            `json:"uptime,omitempty"`
	PerformanceMetrics *PerformanceMetrics `json:"performanceMetrics,omitempty"`
}

// Baseline is the seeded status of a station that operational states start from.
type Baseline struct {
	StationID string `json:"stationId" yaml:"station_id"`
	Status    Status `json:"status" yaml:"status"`
	Alerts    int    `json:"alerts" yaml:"alerts"`
}
