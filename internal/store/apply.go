package store

import (
	"encoding/json"
	"fmt"

	"swapnet-ops/internal/journal"
	"swapnet-ops/internal/station"
)

// Apply re-executes a recorded journal event against the store.
// Unmatched events are applied as well; they stay no-ops.
func (s *Store) Apply(ev journal.Event) error {
	switch ev.Action {
	case journal.ActionUpdateStationConfig:
		var p station.StationPatch
		if err := decode(ev, &p); err != nil {
			return err
		}
		s.UpdateStationConfig(ev.TargetID, p)
	case journal.ActionAddStation:
		var st station.Station
		if err := decode(ev, &st); err != nil {
			return err
		}
		s.AddStation(st)
	case journal.ActionRemoveStation:
		s.RemoveStation(ev.TargetID)
	case journal.ActionBulkUpdateStationConfig:
		var updates []station.StationUpdate
		if err := decode(ev, &updates); err != nil {
			return err
		}
		s.BulkUpdateStationConfig(updates)
	case journal.ActionUpdateOperationalState:
		var p station.OperationalPatch
		if err := decode(ev, &p); err != nil {
			return err
		}
		s.UpdateOperationalState(ev.TargetID, p)
	case journal.ActionSetSimulationState,
		journal.ActionRunSimulationStart,
		journal.ActionRunSimulationComplete:
		var st station.SimulationState
		if err := decode(ev, &st); err != nil {
			return err
		}
		s.SetSimulationState(st)
	case journal.ActionResetSimulation:
		s.ResetSimulation()
	case journal.ActionAddRecommendation:
		var rec station.NetworkRecommendation
		if err := decode(ev, &rec); err != nil {
			return err
		}
		s.AddRecommendation(rec)
	case journal.ActionDismissRecommendation:
		s.DismissRecommendation(ev.TargetID)
	case journal.ActionRecordFailure:
		var f station.FailureEvent
		if err := decode(ev, &f); err != nil {
			return err
		}
		s.RecordFailure(f)
	case journal.ActionReset:
		s.Reset()
	case journal.ActionUpdateMaintenanceStatus:
		var p statusPayload
		if err := decode(ev, &p); err != nil {
			return err
		}
		if _, err := s.UpdateMaintenanceActionStatus(ev.TargetID, station.ActionStatus(p.Status)); err != nil {
			return fmt.Errorf("replay seq %d: %w", ev.Seq, err)
		}
	case journal.ActionAddMaintenanceAction:
		var a station.MaintenanceAction
		if err := decode(ev, &a); err != nil {
			return err
		}
		s.AddMaintenanceAction(a)
	case journal.ActionAcknowledgeFailure:
		s.AcknowledgeFailure(ev.TargetID)
	case journal.ActionUpdateRecommendationStatus:
		var p statusPayload
		if err := decode(ev, &p); err != nil {
			return err
		}
		if _, err := s.UpdateRecommendationStatus(ev.TargetID, station.RecommendationStatus(p.Status)); err != nil {
			return fmt.Errorf("replay seq %d: %w", ev.Seq, err)
		}
	default:
		return fmt.Errorf("replay seq %d: unknown action %q", ev.Seq, ev.Action)
	}
	return nil
}

func decode(ev journal.Event, v any) error {
	if len(ev.Payload) == 0 {
		return fmt.Errorf("replay seq %d: %s has no payload", ev.Seq, ev.Action)
	}
	if err := json.Unmarshal(ev.Payload, v); err != nil {
		return fmt.Errorf("replay seq %d: decode %s: %w", ev.Seq, ev.Action, err)
	}
	return nil
}
