// Package journal records store actions so they can be exported and replayed.
package journal

import (
	"encoding/json"
	"time"
)

// Actor names the role an action was issued under.
type Actor string

// Actors.
const (
	ActorAdmin    Actor = "admin"
	ActorOperator Actor = "operator"
	ActorSystem   Actor = "system"
)

// Event is one recorded store action.
type Event struct {
	Seq       uint64          `json:"seq"`
	Action    string          `json:"action"`
	Actor     Actor           `json:"actor"`
	TargetID  string          `json:"target_id,omitempty"`
	Matched   bool            `json:"matched"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp time.Time       `json:"ts"`
}

// Writer receives journal events.
type Writer interface {
	WriteEvent(Event) error
}

// Optional: writers may support batch mode.
type batchWriter interface {
	WriteEvents([]Event) error
}

// WriteAll sends events to w, using batch mode when w supports it.
func WriteAll(w Writer, events []Event) error {
	if bw, ok := w.(batchWriter); ok {
		return bw.WriteEvents(events)
	}
	for _, ev := range events {
		if err := w.WriteEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

// Action names. They mirror the role that is allowed to issue them.
const (
	ActionUpdateStationConfig     = "admin/updateStationConfig"
	ActionAddStation              = "admin/addStation"
	ActionRemoveStation           = "admin/removeStation"
	ActionBulkUpdateStationConfig = "admin/bulkUpdateStationConfig"
	ActionUpdateOperationalState  = "admin/updateOperationalState"
	ActionSetSimulationState      = "admin/setSimulationState"
	ActionRunSimulationStart      = "admin/runSimulation/start"
	ActionRunSimulationComplete   = "admin/runSimulation/complete"
	ActionResetSimulation         = "admin/resetSimulation"
	ActionAddRecommendation       = "admin/addRecommendation"
	ActionDismissRecommendation   = "admin/dismissRecommendation"
	ActionRecordFailure           = "admin/recordFailure"
	ActionReset                   = "admin/reset"

	ActionUpdateMaintenanceStatus    = "operator/updateMaintenanceActionStatus"
	ActionAddMaintenanceAction       = "operator/addMaintenanceAction"
	ActionAcknowledgeFailure         = "operator/acknowledgeFailure"
	ActionUpdateRecommendationStatus = "operator/updateRecommendationStatus"
)
