// Package selectors computes derived views over a store snapshot.
//
// Every function is pure: it reads the snapshot it is given and returns
// freshly allocated slices, so callers may keep or modify the results.
package selectors

import (
	"math"
	"time"

	"swapnet-ops/internal/station"
)

// Thresholds used by the derived station sets.
const (
	OverloadThreshold     = 85.0
	LowInventoryThreshold = 10
	DefaultRecentHours    = 24
	FilterAll             = "all"
)

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// StationByID returns the station with the given id.
func StationByID(s station.Snapshot, id string) (station.Station, bool) {
	for _, st := range s.Stations {
		if st.ID == id {
			return st, true
		}
	}
	return station.Station{}, false
}

// OperationalStateByID returns the operational state of the given station.
func OperationalStateByID(s station.Snapshot, id string) (station.OperationalState, bool) {
	for _, st := range s.OperationalStates {
		if st.StationID == id {
			return st, true
		}
	}
	return station.OperationalState{}, false
}

// StatesByStatus returns the operational states with the given status.
func StatesByStatus(s station.Snapshot, status station.Status) []station.OperationalState {
	return filter(s.OperationalStates, func(o station.OperationalState) bool { return o.Status == status })
}

// TotalChargers sums total chargers over operational states.
func TotalChargers(s station.Snapshot) int {
	n := 0
	for _, o := range s.OperationalStates {
		n += o.TotalChargers
	}
	return n
}

// ActiveChargers sums active chargers over operational states.
func ActiveChargers(s station.Snapshot) int {
	n := 0
	for _, o := range s.OperationalStates {
		n += o.ActiveChargers
	}
	return n
}

// TotalAlerts sums alerts over operational states.
func TotalAlerts(s station.Snapshot) int {
	n := 0
	for _, o := range s.OperationalStates {
		n += o.Alerts
	}
	return n
}

// AverageStationLoad is the mean station load, 0 for an empty network.
func AverageStationLoad(s station.Snapshot) float64 {
	if len(s.Stations) == 0 {
		return 0
	}
	sum := 0.0
	for _, st := range s.Stations {
		sum += st.StationLoad
	}
	return sum / float64(len(s.Stations))
}

// NetworkEfficiency is the mean efficiency over operational states, 0 when there are none.
func NetworkEfficiency(s station.Snapshot) float64 {
	if len(s.OperationalStates) == 0 {
		return 0
	}
	sum := 0.0
	for _, o := range s.OperationalStates {
		sum += o.PerformanceMetrics.Efficiency
	}
	return sum / float64(len(s.OperationalStates))
}

// FailuresByStation returns the failures recorded for a station.
func FailuresByStation(s station.Snapshot, stationID string) []station.FailureEvent {
	return filter(s.Failures, func(f station.FailureEvent) bool { return f.StationID == stationID })
}

// CriticalFailures returns failures with critical severity.
func CriticalFailures(s station.Snapshot) []station.FailureEvent {
	return FailuresBySeverity(s, string(station.SeverityCritical))
}

// FailuresBySeverity filters failures by severity; "all" returns every failure.
func FailuresBySeverity(s station.Snapshot, severity string) []station.FailureEvent {
	if severity == FilterAll {
		return filter(s.Failures, func(station.FailureEvent) bool { return true })
	}
	return filter(s.Failures, func(f station.FailureEvent) bool { return string(f.Severity) == severity })
}

// RecentFailures returns failures strictly newer than now minus hours.
// A non-positive hours value uses DefaultRecentHours.
func RecentFailures(s station.Snapshot, now time.Time, hours float64) []station.FailureEvent {
	if hours <= 0 {
		hours = DefaultRecentHours
	}
	cutoff := now.Add(-time.Duration(hours * float64(time.Hour)))
	return filter(s.Failures, func(f station.FailureEvent) bool { return f.Timestamp.After(cutoff) })
}

// PendingMaintenance returns maintenance actions still pending.
func PendingMaintenance(s station.Snapshot) []station.MaintenanceAction {
	return MaintenanceByStatus(s, string(station.ActionPending))
}

// MaintenanceByStatus filters maintenance actions by status; "all" returns every action.
func MaintenanceByStatus(s station.Snapshot, status string) []station.MaintenanceAction {
	if status == FilterAll {
		return filter(s.Maintenance, func(station.MaintenanceAction) bool { return true })
	}
	return filter(s.Maintenance, func(a station.MaintenanceAction) bool { return string(a.Status) == status })
}

// MaintenanceByStation returns the maintenance actions for a station.
func MaintenanceByStation(s station.Snapshot, stationID string) []station.MaintenanceAction {
	return filter(s.Maintenance, func(a station.MaintenanceAction) bool { return a.StationID == stationID })
}

// CriticalMaintenance returns maintenance actions with critical priority.
func CriticalMaintenance(s station.Snapshot) []station.MaintenanceAction {
	return filter(s.Maintenance, func(a station.MaintenanceAction) bool { return a.Priority == station.SeverityCritical })
}

// ActiveRecommendations returns recommendations that are neither dismissed nor completed.
func ActiveRecommendations(s station.Snapshot) []station.NetworkRecommendation {
	return filter(s.Recommendations, func(r station.NetworkRecommendation) bool {
		return r.Status != station.RecDismissed && r.Status != station.RecCompleted
	})
}

// RecommendationsByPriority filters recommendations by priority.
func RecommendationsByPriority(s station.Snapshot, p station.Severity) []station.NetworkRecommendation {
	return filter(s.Recommendations, func(r station.NetworkRecommendation) bool { return r.Priority == p })
}

// RecommendationsByStation returns recommendations that list the station as affected.
func RecommendationsByStation(s station.Snapshot, stationID string) []station.NetworkRecommendation {
	return filter(s.Recommendations, func(r station.NetworkRecommendation) bool {
		for _, id := range r.AffectedStations {
			if id == stationID {
				return true
			}
		}
		return false
	})
}

// AvailableStations returns online stations with a free charger and stock above the low-inventory threshold.
func AvailableStations(s station.Snapshot) []station.Station {
	online := make(map[string]bool, len(s.OperationalStates))
	for _, o := range s.OperationalStates {
		online[o.StationID] = o.Status == station.StatusOnline
	}
	return filter(s.Stations, func(st station.Station) bool {
		return online[st.ID] &&
			st.TotalChargers > st.ActiveChargers &&
			st.ChargedBatteryInventory >= LowInventoryThreshold
	})
}

// OverloadedStations returns stations at or above OverloadThreshold load.
func OverloadedStations(s station.Snapshot) []station.Station {
	return filter(s.Stations, func(st station.Station) bool { return st.StationLoad >= OverloadThreshold })
}

// LowInventoryStations returns stations below LowInventoryThreshold charged batteries.
func LowInventoryStations(s station.Snapshot) []station.Station {
	return filter(s.Stations, func(st station.Station) bool { return st.ChargedBatteryInventory < LowInventoryThreshold })
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
