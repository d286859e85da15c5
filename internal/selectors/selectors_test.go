package selectors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swapnet-ops/internal/station"
)

var now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func fixture() station.Snapshot {
	return station.Snapshot{
		Stations: []station.Station{
			{ID: "A", ActiveChargers: 2, TotalChargers: 4, ChargedBatteryInventory: 12, StationLoad: 40, Temperature: 30.04, QueueLength: 1},
			{ID: "B", ActiveChargers: 5, TotalChargers: 5, ChargedBatteryInventory: 3, StationLoad: 90, Temperature: 35.1, QueueLength: 7},
		},
		OperationalStates: []station.OperationalState{
			{StationID: "A", Status: station.StatusOnline, ActiveChargers: 2, TotalChargers: 4, Alerts: 1, PerformanceMetrics: station.PerformanceMetrics{Efficiency: 80}},
			{StationID: "B", Status: station.StatusDegraded, ActiveChargers: 5, TotalChargers: 5, Alerts: 2, PerformanceMetrics: station.PerformanceMetrics{Efficiency: 90}},
		},
		Failures: []station.FailureEvent{
			{ID: "F1", StationID: "A", Severity: station.SeverityCritical, Timestamp: now.Add(-time.Hour)},
			{ID: "F2", StationID: "B", Severity: station.SeverityLow, Timestamp: now.Add(-30 * time.Hour)},
			{ID: "F3", StationID: "A", Severity: station.SeverityLow, Timestamp: now.Add(-24 * time.Hour)},
		},
		Maintenance: []station.MaintenanceAction{
			{ID: "M1", StationID: "A", Status: station.ActionPending, Priority: station.SeverityCritical},
			{ID: "M2", StationID: "B", Status: station.ActionEscalated, Priority: station.SeverityMedium},
		},
		Recommendations: []station.NetworkRecommendation{
			{ID: "R1", Priority: station.SeverityHigh, Status: station.RecPending, AffectedStations: []string{"A", "B"}},
			{ID: "R2", Priority: station.SeverityHigh, Status: station.RecCompleted, AffectedStations: []string{"B"}},
			{ID: "R3", Priority: station.SeverityLow, Status: station.RecInProgress},
		},
	}
}

func TestTotals(t *testing.T) {
	s := fixture()
	assert.Equal(t, 9, TotalChargers(s))
	assert.Equal(t, 7, ActiveChargers(s))
	assert.Equal(t, 3, TotalAlerts(s))
	assert.Equal(t, 65.0, AverageStationLoad(s))
	assert.Equal(t, 85.0, NetworkEfficiency(s))
}

func TestEmptySnapshot(t *testing.T) {
	var s station.Snapshot
	assert.Zero(t, AverageStationLoad(s))
	assert.Zero(t, NetworkEfficiency(s))
	assert.NotNil(t, OverloadedStations(s))
	assert.Equal(t, StationMetrics{}, Stations(s))
}

func TestFailureFilters(t *testing.T) {
	s := fixture()
	assert.Len(t, FailuresByStation(s, "A"), 2)
	assert.Len(t, CriticalFailures(s), 1)
	assert.Len(t, FailuresBySeverity(s, "low"), 2)
	assert.Len(t, FailuresBySeverity(s, FilterAll), 3)

	recent := RecentFailures(s, now, 0)
	require.Len(t, recent, 1, "a failure exactly at the cutoff is not recent")
	assert.Equal(t, "F1", recent[0].ID)
	assert.Len(t, RecentFailures(s, now, 48), 3)
}

func TestMaintenanceFilters(t *testing.T) {
	s := fixture()
	assert.Len(t, PendingMaintenance(s), 1)
	assert.Len(t, MaintenanceByStatus(s, "escalated"), 1)
	assert.Len(t, MaintenanceByStatus(s, FilterAll), 2)
	assert.Len(t, MaintenanceByStation(s, "B"), 1)
	assert.Len(t, CriticalMaintenance(s), 1)
}

func TestRecommendationFilters(t *testing.T) {
	s := fixture()
	active := ActiveRecommendations(s)
	require.Len(t, active, 2)
	assert.Equal(t, "R1", active[0].ID)
	assert.Len(t, RecommendationsByPriority(s, station.SeverityHigh), 2)
	assert.Len(t, RecommendationsByStation(s, "B"), 2)
	assert.Empty(t, RecommendationsByStation(s, "Z"))
}

func TestStationSets(t *testing.T) {
	s := fixture()
	require.Len(t, AvailableStations(s), 1)
	assert.Equal(t, "A", AvailableStations(s)[0].ID)
	assert.Equal(t, "B", OverloadedStations(s)[0].ID)
	assert.Equal(t, "B", LowInventoryStations(s)[0].ID)
	assert.Len(t, StatesByStatus(s, station.StatusDegraded), 1)
}

func TestSummary(t *testing.T) {
	sum := Summary(fixture())
	assert.Equal(t, 9, sum.TotalChargers)
	assert.Equal(t, StationMetrics{
		TotalStations:      2,
		TotalChargers:      7,
		TotalQueue:         8,
		TotalBatteries:     15,
		AverageLoad:        65,
		AverageTemperature: 32.6,
	}, sum.Stations)
	assert.Equal(t, 1, sum.Operational.OnlineStations)
	assert.Equal(t, 1, sum.Operational.DegradedStations)
	assert.Equal(t, SeverityCounts{Critical: 1, Low: 2}, sum.Failures.BySeverity)
	assert.Equal(t, StatusCounts{Pending: 1, Escalated: 1}, sum.Maintenance.ByStatus)
}

func TestResultsAreFreshSlices(t *testing.T) {
	s := fixture()
	out := FailuresBySeverity(s, FilterAll)
	out[0].ID = "changed"
	assert.Equal(t, "F1", s.Failures[0].ID)
}
