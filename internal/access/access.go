// Package access hands out role-scoped views of the store.
//
// Each view is an unexported struct that carries only the methods of its
// role interface, so a caller holding an OperatorStore or UserStore cannot
// reach admin actions through a type assertion.
package access

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"swapnet-ops/internal/selectors"
	"swapnet-ops/internal/station"
	"swapnet-ops/internal/store"
)

// Role names a dashboard audience.
type Role string

// Roles.
const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleUser     Role = "user"
)

// ErrUnknownRole is returned by ParseRole for names outside the three roles.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole maps a case-insensitive name to a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleOperator, RoleUser:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Reader is the read surface shared by every role.
type Reader interface {
	Stations() []station.Station
	OperationalStates() []station.OperationalState
	StationByID(id string) (station.Station, bool)
	OperationalStateByID(id string) (station.OperationalState, bool)
	OnlineStations() []station.OperationalState
	DegradedStations() []station.OperationalState
	OfflineStations() []station.OperationalState
	TotalChargers() int
	ActiveChargers() int
	TotalAlerts() int
	AverageStationLoad() float64
	NetworkEfficiency() float64
	FailuresByStation(id string) []station.FailureEvent
	FailuresBySeverity(severity string) []station.FailureEvent
	CriticalFailures() []station.FailureEvent
	RecentFailures(hours float64) []station.FailureEvent
	PendingMaintenanceActions() []station.MaintenanceAction
	MaintenanceActionsByStatus(status string) []station.MaintenanceAction
	MaintenanceActionsByStation(id string) []station.MaintenanceAction
	CriticalMaintenanceActions() []station.MaintenanceAction
	ActiveRecommendations() []station.NetworkRecommendation
	RecommendationsByPriority(p station.Severity) []station.NetworkRecommendation
	RecommendationsByStation(id string) []station.NetworkRecommendation
	AvailableStations() []station.Station
	OverloadedStations() []station.Station
	LowInventoryStations() []station.Station
	Summary() selectors.NetworkSummary
}

// SimulationRunner starts simulation runs.
type SimulationRunner interface {
	Run(ctx context.Context, kind string) error
}

// reader forwards the shared read surface. It is embedded by every facade.
type reader struct {
	s *store.Store
}

func (r reader) Stations() []station.Station { return r.s.Stations() }
func (r reader) OperationalStates() []station.OperationalState {
	return r.s.OperationalStates()
}
func (r reader) StationByID(id string) (station.Station, bool) { return r.s.StationByID(id) }
func (r reader) OperationalStateByID(id string) (station.OperationalState, bool) {
	return r.s.OperationalStateByID(id)
}
func (r reader) OnlineStations() []station.OperationalState   { return r.s.OnlineStations() }
func (r reader) DegradedStations() []station.OperationalState { return r.s.DegradedStations() }
func (r reader) OfflineStations() []station.OperationalState  { return r.s.OfflineStations() }
func (r reader) TotalChargers() int                           { return r.s.TotalChargers() }
func (r reader) ActiveChargers() int                          { return r.s.ActiveChargers() }
func (r reader) TotalAlerts() int                             { return r.s.TotalAlerts() }
func (r reader) AverageStationLoad() float64                  { return r.s.AverageStationLoad() }
func (r reader) NetworkEfficiency() float64                   { return r.s.NetworkEfficiency() }
func (r reader) FailuresByStation(id string) []station.FailureEvent {
	return r.s.FailuresByStation(id)
}
func (r reader) FailuresBySeverity(severity string) []station.FailureEvent {
	return r.s.FailuresBySeverity(severity)
}
func (r reader) CriticalFailures() []station.FailureEvent { return r.s.CriticalFailures() }
func (r reader) RecentFailures(hours float64) []station.FailureEvent {
	return r.s.RecentFailures(hours)
}
func (r reader) PendingMaintenanceActions() []station.MaintenanceAction {
	return r.s.PendingMaintenanceActions()
}
func (r reader) MaintenanceActionsByStatus(status string) []station.MaintenanceAction {
	return r.s.MaintenanceActionsByStatus(status)
}
func (r reader) MaintenanceActionsByStation(id string) []station.MaintenanceAction {
	return r.s.MaintenanceActionsByStation(id)
}
func (r reader) CriticalMaintenanceActions() []station.MaintenanceAction {
	return r.s.CriticalMaintenanceActions()
}
func (r reader) ActiveRecommendations() []station.NetworkRecommendation {
	return r.s.ActiveRecommendations()
}
func (r reader) RecommendationsByPriority(p station.Severity) []station.NetworkRecommendation {
	return r.s.RecommendationsByPriority(p)
}
func (r reader) RecommendationsByStation(id string) []station.NetworkRecommendation {
	return r.s.RecommendationsByStation(id)
}
func (r reader) AvailableStations() []station.Station    { return r.s.AvailableStations() }
func (r reader) OverloadedStations() []station.Station   { return r.s.OverloadedStations() }
func (r reader) LowInventoryStations() []station.Station { return r.s.LowInventoryStations() }
func (r reader) Summary() selectors.NetworkSummary       { return r.s.Summary() }
