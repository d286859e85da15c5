package access

import (
	"context"

	"swapnet-ops/internal/station"
	"swapnet-ops/internal/store"
)

// AdminStore is the full mutation surface: station configuration,
// recommendations, failure records and the simulation.
type AdminStore interface {
	Reader
	FailureEvents() []station.FailureEvent
	MaintenanceActions() []station.MaintenanceAction
	NetworkRecommendations() []station.NetworkRecommendation

	UpdateStationConfig(id string, patch station.StationPatch) bool
	AddStation(st station.Station)
	RemoveStation(id string) bool
	BulkUpdateStationConfig(updates []station.StationUpdate) int
	UpdateOperationalState(id string, patch station.OperationalPatch) bool
	AddRecommendation(rec station.NetworkRecommendation) station.NetworkRecommendation
	DismissRecommendation(id string) bool
	RecordFailure(f station.FailureEvent) station.FailureEvent
	Reset()

	Simulation() station.SimulationState
	SetSimulationState(st station.SimulationState)
	ResetSimulation()
	RunSimulation(ctx context.Context, kind string) error
}

type adminFacade struct {
	reader
	runner SimulationRunner
}

// ForAdmin returns the admin view of s. Simulation runs go through runner.
func ForAdmin(s *store.Store, runner SimulationRunner) AdminStore {
	return adminFacade{reader: reader{s: s}, runner: runner}
}

func (a adminFacade) FailureEvents() []station.FailureEvent { return a.s.FailureEvents() }
func (a adminFacade) MaintenanceActions() []station.MaintenanceAction {
	return a.s.MaintenanceActions()
}
func (a adminFacade) NetworkRecommendations() []station.NetworkRecommendation {
	return a.s.NetworkRecommendations()
}

func (a adminFacade) UpdateStationConfig(id string, patch station.StationPatch) bool {
	return a.s.UpdateStationConfig(id, patch)
}
func (a adminFacade) AddStation(st station.Station)  { a.s.AddStation(st) }
func (a adminFacade) RemoveStation(id string) bool { return a.s.RemoveStation(id) }
func (a adminFacade) BulkUpdateStationConfig(updates []station.StationUpdate) int {
	return a.s.BulkUpdateStationConfig(updates)
}
func (a adminFacade) UpdateOperationalState(id string, patch station.OperationalPatch) bool {
	return a.s.UpdateOperationalState(id, patch)
}
func (a adminFacade) AddRecommendation(rec station.NetworkRecommendation) station.NetworkRecommendation {
	return a.s.AddRecommendation(rec)
}
func (a adminFacade) DismissRecommendation(id string) bool { return a.s.DismissRecommendation(id) }
func (a adminFacade) RecordFailure(f station.FailureEvent) station.FailureEvent {
	return a.s.RecordFailure(f)
}
func (a adminFacade) Reset() { a.s.Reset() }

func (a adminFacade) Simulation() station.SimulationState { return a.s.Simulation() }
func (a adminFacade) SetSimulationState(st station.SimulationState) {
	a.s.SetSimulationState(st)
}
func (a adminFacade) ResetSimulation() { a.s.ResetSimulation() }
func (a adminFacade) RunSimulation(ctx context.Context, kind string) error {
	return a.runner.Run(ctx, kind)
}
