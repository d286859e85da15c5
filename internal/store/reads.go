package store

import (
	"swapnet-ops/internal/selectors"
	"swapnet-ops/internal/station"
)

// Read-side accessors. Each call takes a fresh snapshot, so results always
// reflect the state at call time.

// Stations returns every station.
func (s *Store) Stations() []station.Station { return s.Snapshot().Stations }

// OperationalStates returns every derived operational state.
func (s *Store) OperationalStates() []station.OperationalState {
	return s.Snapshot().OperationalStates
}

// FailureEvents returns every recorded failure.
func (s *Store) FailureEvents() []station.FailureEvent { return s.Snapshot().Failures }

// MaintenanceActions returns every maintenance action.
func (s *Store) MaintenanceActions() []station.MaintenanceAction {
	return s.Snapshot().Maintenance
}

// NetworkRecommendations returns every network recommendation.
func (s *Store) NetworkRecommendations() []station.NetworkRecommendation {
	return s.Snapshot().Recommendations
}

func (s *Store) StationByID(id string) (station.Station, bool) {
	return selectors.StationByID(s.Snapshot(), id)
}

func (s *Store) OperationalStateByID(id string) (station.OperationalState, bool) {
	return selectors.OperationalStateByID(s.Snapshot(), id)
}

func (s *Store) OnlineStations() []station.OperationalState {
	return selectors.StatesByStatus(s.Snapshot(), station.StatusOnline)
}

func (s *Store) DegradedStations() []station.OperationalState {
	return selectors.StatesByStatus(s.Snapshot(), station.StatusDegraded)
}

func (s *Store) OfflineStations() []station.OperationalState {
	return selectors.StatesByStatus(s.Snapshot(), station.StatusOffline)
}

func (s *Store) TotalChargers() int  { return selectors.TotalChargers(s.Snapshot()) }
func (s *Store) ActiveChargers() int { return selectors.ActiveChargers(s.Snapshot()) }
func (s *Store) TotalAlerts() int    { return selectors.TotalAlerts(s.Snapshot()) }

func (s *Store) AverageStationLoad() float64 {
	return selectors.AverageStationLoad(s.Snapshot())
}

func (s *Store) NetworkEfficiency() float64 {
	return selectors.NetworkEfficiency(s.Snapshot())
}

func (s *Store) FailuresByStation(id string) []station.FailureEvent {
	return selectors.FailuresByStation(s.Snapshot(), id)
}

func (s *Store) FailuresBySeverity(severity string) []station.FailureEvent {
	return selectors.FailuresBySeverity(s.Snapshot(), severity)
}

func (s *Store) CriticalFailures() []station.FailureEvent {
	return selectors.CriticalFailures(s.Snapshot())
}

// RecentFailures returns failures newer than hours before now; hours <= 0 means 24.
func (s *Store) RecentFailures(hours float64) []station.FailureEvent {
	return selectors.RecentFailures(s.Snapshot(), s.now(), hours)
}

func (s *Store) PendingMaintenanceActions() []station.MaintenanceAction {
	return selectors.PendingMaintenance(s.Snapshot())
}

func (s *Store) MaintenanceActionsByStatus(status string) []station.MaintenanceAction {
	return selectors.MaintenanceByStatus(s.Snapshot(), status)
}

func (s *Store) MaintenanceActionsByStation(id string) []station.MaintenanceAction {
	return selectors.MaintenanceByStation(s.Snapshot(), id)
}

func (s *Store) CriticalMaintenanceActions() []station.MaintenanceAction {
	return selectors.CriticalMaintenance(s.Snapshot())
}

func (s *Store) ActiveRecommendations() []station.NetworkRecommendation {
	return selectors.ActiveRecommendations(s.Snapshot())
}

func (s *Store) RecommendationsByPriority(p station.Severity) []station.NetworkRecommendation {
	return selectors.RecommendationsByPriority(s.Snapshot(), p)
}

func (s *Store) RecommendationsByStation(id string) []station.NetworkRecommendation {
	return selectors.RecommendationsByStation(s.Snapshot(), id)
}

func (s *Store) AvailableStations() []station.Station {
	return selectors.AvailableStations(s.Snapshot())
}

func (s *Store) OverloadedStations() []station.Station {
	return selectors.OverloadedStations(s.Snapshot())
}

func (s *Store) LowInventoryStations() []station.Station {
	return selectors.LowInventoryStations(s.Snapshot())
}

// Summary computes the headline aggregates from a single snapshot.
func (s *Store) Summary() selectors.NetworkSummary {
	return selectors.Summary(s.Snapshot())
}
