package selectors

import (
	"math"

	"swapnet-ops/internal/station"
)

// StationMetrics aggregates station configuration.
type StationMetrics struct {
	TotalStations      int     `json:"totalStations"`
	TotalChargers      int     `json:"totalChargers"`
	TotalQueue         int     `json:"totalQueue"`
	TotalBatteries     int     `json:"totalBatteries"`
	AverageLoad        float64 `json:"averageLoad"`
	AverageTemperature float64 `json:"averageTemperature"`
}

// SeverityCounts counts records per severity.
type SeverityCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// FailureMetrics aggregates failure events.
type FailureMetrics struct {
	TotalFailures int            `json:"totalFailures"`
	BySeverity    SeverityCounts `json:"bySeverity"`
}

// StatusCounts counts maintenance actions per status.
type StatusCounts struct {
	Pending      int `json:"pending"`
	Acknowledged int `json:"acknowledged"`
	Escalated    int `json:"escalated"`
	Completed    int `json:"completed"`
	Dismissed    int `json:"dismissed"`
}

// MaintenanceMetrics aggregates maintenance actions.
type MaintenanceMetrics struct {
	TotalActions int          `json:"totalActions"`
	ByStatus     StatusCounts `json:"byStatus"`
}

// OperationalMetrics aggregates operational states.
type OperationalMetrics struct {
	TotalStations       int `json:"totalStations"`
	OnlineStations      int `json:"onlineStations"`
	DegradedStations    int `json:"degradedStations"`
	OfflineStations     int `json:"offlineStations"`
	TotalAlerts         int `json:"totalAlerts"`
	TotalActiveChargers int `json:"totalActiveChargers"`
}

// NetworkSummary bundles the headline figures shown on every dashboard.
type NetworkSummary struct {
	TotalChargers      int                `json:"totalChargers"`
	ActiveChargers     int                `json:"activeChargers"`
	TotalAlerts        int                `json:"totalAlerts"`
	AverageStationLoad float64            `json:"averageStationLoad"`
	NetworkEfficiency  float64            `json:"networkEfficiency"`
	Stations           StationMetrics     `json:"stations"`
	Operational        OperationalMetrics `json:"operational"`
	Failures           FailureMetrics     `json:"failures"`
	Maintenance        MaintenanceMetrics `json:"maintenance"`
}

// Stations aggregates the station list. Chargers count active chargers.
func Stations(s station.Snapshot) StationMetrics {
	m := StationMetrics{TotalStations: len(s.Stations)}
	if m.TotalStations == 0 {
		return m
	}
	var load, temp float64
	for _, st := range s.Stations {
		m.TotalChargers += st.ActiveChargers
		m.TotalQueue += st.QueueLength
		m.TotalBatteries += st.ChargedBatteryInventory
		load += st.StationLoad
		temp += st.Temperature
	}
	n := float64(m.TotalStations)
	m.AverageLoad = math.Round(load / n)
	m.AverageTemperature = round1(temp / n)
	return m
}

// Failures counts failures by severity.
func Failures(s station.Snapshot) FailureMetrics {
	m := FailureMetrics{TotalFailures: len(s.Failures)}
	for _, f := range s.Failures {
		switch f.Severity {
		case station.SeverityCritical:
			m.BySeverity.Critical++
		case station.SeverityHigh:
			m.BySeverity.High++
		case station.SeverityMedium:
			m.BySeverity.Medium++
		case station.SeverityLow:
			m.BySeverity.Low++
		}
	}
	return m
}

// Maintenance counts maintenance actions by status.
func Maintenance(s station.Snapshot) MaintenanceMetrics {
	m := MaintenanceMetrics{TotalActions: len(s.Maintenance)}
	for _, a := range s.Maintenance {
		switch a.Status {
		case station.ActionPending:
			m.ByStatus.Pending++
		case station.ActionAcknowledged:
			m.ByStatus.Acknowledged++
		case station.ActionEscalated:
			m.ByStatus.Escalated++
		case station.ActionCompleted:
			m.ByStatus.Completed++
		case station.ActionDismissed:
			m.ByStatus.Dismissed++
		}
	}
	return m
}

// Operational counts operational states by status.
func Operational(s station.Snapshot) OperationalMetrics {
	m := OperationalMetrics{TotalStations: len(s.OperationalStates)}
	for _, o := range s.OperationalStates {
		switch o.Status {
		case station.StatusOnline:
			m.OnlineStations++
		case station.StatusDegraded:
			m.DegradedStations++
		case station.StatusOffline:
			m.OfflineStations++
		}
		m.TotalAlerts += o.Alerts
		m.TotalActiveChargers += o.ActiveChargers
	}
	return m
}

// Summary computes every headline aggregate from one snapshot.
func Summary(s station.Snapshot) NetworkSummary {
	return NetworkSummary{
		TotalChargers:      TotalChargers(s),
		ActiveChargers:     ActiveChargers(s),
		TotalAlerts:        TotalAlerts(s),
		AverageStationLoad: AverageStationLoad(s),
		NetworkEfficiency:  NetworkEfficiency(s),
		Stations:           Stations(s),
		Operational:        Operational(s),
		Failures:           Failures(s),
		Maintenance:        Maintenance(s),
	}
}
