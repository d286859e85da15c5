package store

import (
	"fmt"

	"swapnet-ops/internal/journal"
	"swapnet-ops/internal/station"
)

type statusPayload struct {
	Status string `json:"status"`
}

// UpdateMaintenanceActionStatus moves a maintenance action to status.
func (s *Store) UpdateMaintenanceActionStatus(id string, status station.ActionStatus) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("%w: maintenance action status %q", ErrInvalidStatus, status)
	}
	s.mu.Lock()
	defer s.unlock()
	matched := false
	for i := range s.actions {
		if s.actions[i].ID == id {
			s.actions[i].Status = status
			matched = true
		}
	}
	s.emit(journal.ActorOperator, journal.ActionUpdateMaintenanceStatus, id, matched, statusPayload{Status: string(status)})
	return matched, nil
}

// AddMaintenanceAction appends an action, filling id, createdAt and status when empty.
func (s *Store) AddMaintenanceAction(a station.MaintenanceAction) station.MaintenanceAction {
	s.mu.Lock()
	defer s.unlock()
	if a.ID == "" {
		a.ID = s.newID("MA")
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now().UTC()
	}
	if a.Status == "" {
		a.Status = station.ActionPending
	}
	if a.StationName == "" {
		for _, st := range s.stations {
			if st.ID == a.StationID {
				a.StationName = st.Name
				break
			}
		}
	}
	s.actions = append(s.actions, a)
	s.emit(journal.ActorOperator, journal.ActionAddMaintenanceAction, a.ID, true, a)
	return a
}

// AcknowledgeFailure flags a failure event as acknowledged.
func (s *Store) AcknowledgeFailure(id string) bool {
	s.mu.Lock()
	defer s.unlock()
	matched := false
	for i := range s.failures {
		if s.failures[i].ID == id {
			s.failures[i].Acknowledged = true
			matched = true
		}
	}
	s.emit(journal.ActorOperator, journal.ActionAcknowledgeFailure, id, matched, nil)
	return matched
}

// UpdateRecommendationStatus advances a recommendation. Only in_progress and
// completed are accepted; dismissal is an admin action.
func (s *Store) UpdateRecommendationStatus(id string, status station.RecommendationStatus) (bool, error) {
	if status != station.RecInProgress && status != station.RecCompleted {
		return false, fmt.Errorf("%w: recommendation status %q", ErrInvalidStatus, status)
	}
	s.mu.Lock()
	defer s.unlock()
	matched := s.setRecStatus(id, status)
	s.emit(journal.ActorOperator, journal.ActionUpdateRecommendationStatus, id, matched, statusPayload{Status: string(status)})
	return matched, nil
}
