package access

import (
	"swapnet-ops/internal/station"
	"swapnet-ops/internal/store"
)

// OperatorStore triages failures and maintenance. It cannot change station
// configuration or the simulation.
type OperatorStore interface {
	Reader
	FailureEvents() []station.FailureEvent
	MaintenanceActions() []station.MaintenanceAction
	NetworkRecommendations() []station.NetworkRecommendation

	UpdateMaintenanceActionStatus(id string, status station.ActionStatus) (bool, error)
	AddMaintenanceAction(a station.MaintenanceAction) station.MaintenanceAction
	AcknowledgeFailure(id string) bool
	UpdateRecommendationStatus(id string, status station.RecommendationStatus) (bool, error)
}

type operatorFacade struct {
	reader
}

// ForOperator returns the operator view of s.
func ForOperator(s *store.Store) OperatorStore {
	return operatorFacade{reader{s: s}}
}

func (o operatorFacade) FailureEvents() []station.FailureEvent { return o.s.FailureEvents() }
func (o operatorFacade) MaintenanceActions() []station.MaintenanceAction {
	return o.s.MaintenanceActions()
}
func (o operatorFacade) NetworkRecommendations() []station.NetworkRecommendation {
	return o.s.NetworkRecommendations()
}

func (o operatorFacade) UpdateMaintenanceActionStatus(id string, status station.ActionStatus) (bool, error) {
	return o.s.UpdateMaintenanceActionStatus(id, status)
}
func (o operatorFacade) AddMaintenanceAction(a station.MaintenanceAction) station.MaintenanceAction {
	return o.s.AddMaintenanceAction(a)
}
func (o operatorFacade) AcknowledgeFailure(id string) bool { return o.s.AcknowledgeFailure(id) }
func (o operatorFacade) UpdateRecommendationStatus(id string, status station.RecommendationStatus) (bool, error) {
	return o.s.UpdateRecommendationStatus(id, status)
}
