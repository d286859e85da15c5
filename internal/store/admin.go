package store

import (
	"swapnet-ops/internal/journal"
	"swapnet-ops/internal/station"
)

// UpdateStationConfig merges patch into the station with the given id and
// re-derives operational states. It reports whether the station exists.
func (s *Store) UpdateStationConfig(id string, patch station.StationPatch) bool {
	s.mu.Lock()
	defer s.unlock()
	matched := false
	for i := range s.stations {
		if s.stations[i].ID == id {
			s.stations[i] = patch.Apply(s.stations[i])
			matched = true
		}
	}
	if matched {
		s.derive()
	}
	s.emit(journal.ActorAdmin, journal.ActionUpdateStationConfig, id, matched, patch)
	return matched
}

// AddStation appends a station and re-derives operational states.
func (s *Store) AddStation(st station.Station) {
	s.mu.Lock()
	defer s.unlock()
	if st.TotalChargers < st.ActiveChargers {
		st.TotalChargers = st.ActiveChargers
	}
	s.stations = append(s.stations, st)
	s.derive()
	s.emit(journal.ActorAdmin, journal.ActionAddStation, st.ID, true, st)
}

// RemoveStation drops a station and its operational state.
func (s *Store) RemoveStation(id string) bool {
	s.mu.Lock()
	defer s.unlock()
	kept := s.stations[:0:0]
	for _, st := range s.stations {
		if st.ID != id {
			kept = append(kept, st)
		}
	}
	matched := len(kept) != len(s.stations)
	if matched {
		s.stations = kept
		states := s.states[:0:0]
		for _, o := range s.states {
			if o.StationID != id {
				states = append(states, o)
			}
		}
		s.states = states
	}
	s.emit(journal.ActorAdmin, journal.ActionRemoveStation, id, matched, nil)
	return matched
}

// BulkUpdateStationConfig applies several patches and re-derives once.
// It returns the number of stations that matched an update.
func (s *Store) BulkUpdateStationConfig(updates []station.StationUpdate) int {
	s.mu.Lock()
	defer s.unlock()
	byID := make(map[string]station.StationPatch, len(updates))
	for _, u := range updates {
		byID[u.ID] = u.Patch
	}
	matched := 0
	for i := range s.stations {
		if p, ok := byID[s.stations[i].ID]; ok {
			s.stations[i] = p.Apply(s.stations[i])
			matched++
		}
	}
	if matched > 0 {
		s.derive()
	}
	s.emit(journal.ActorAdmin, journal.ActionBulkUpdateStationConfig, "", matched > 0, updates)
	return matched
}

// UpdateOperationalState applies an admin override to a station's live view.
// Status and alerts are also written to the baseline so later re-derivations keep them.
func (s *Store) UpdateOperationalState(id string, patch station.OperationalPatch) bool {
	s.mu.Lock()
	defer s.unlock()
	matched := false
	for i := range s.states {
		o := &s.states[i]
		if o.StationID != id {
			continue
		}
		matched = true
		if patch.Status != nil {
			o.Status = *patch.Status
		}
		if patch.Alerts != nil {
			o.Alerts = *patch.Alerts
		}
		if patch.Uptime != nil {
			o.Uptime = *patch.Uptime
		}
		if patch.PerformanceMetrics != nil {
			o.PerformanceMetrics = *patch.PerformanceMetrics
		}
		o.LastUpdate = s.now().UTC()
		s.baselines[id] = station.Baseline{StationID: id, Status: o.Status, Alerts: o.Alerts}
	}
	s.emit(journal.ActorAdmin, journal.ActionUpdateOperationalState, id, matched, patch)
	return matched
}

// AddRecommendation appends a recommendation, filling id, createdAt and status when empty.
func (s *Store) AddRecommendation(rec station.NetworkRecommendation) station.NetworkRecommendation {
	s.mu.Lock()
	defer s.unlock()
	if rec.ID == "" {
		rec.ID = s.newID("REC")
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now().UTC()
	}
	if rec.Status == "" {
		rec.Status = station.RecPending
	}
	rec = rec.Clone()
	s.recs = append(s.recs, rec)
	s.emit(journal.ActorAdmin, journal.ActionAddRecommendation, rec.ID, true, rec)
	return rec.Clone()
}

// DismissRecommendation marks a recommendation dismissed.
func (s *Store) DismissRecommendation(id string) bool {
	s.mu.Lock()
	defer s.unlock()
	matched := s.setRecStatus(id, station.RecDismissed)
	s.emit(journal.ActorAdmin, journal.ActionDismissRecommendation, id, matched, nil)
	return matched
}

// RecordFailure appends a failure event, filling id and timestamp when empty.
func (s *Store) RecordFailure(f station.FailureEvent) station.FailureEvent {
	s.mu.Lock()
	defer s.unlock()
	if f.ID == "" {
		f.ID = s.newID("FAIL")
	}
	if f.Timestamp.IsZero() {
		f.Timestamp = s.now().UTC()
	}
	if f.StationName == "" {
		for _, st := range s.stations {
			if st.ID == f.StationID {
				f.StationName = st.Name
				break
			}
		}
	}
	f = f.Clone()
	s.failures = append(s.failures, f)
	s.emit(journal.ActorAdmin, journal.ActionRecordFailure, f.ID, true, f)
	return f.Clone()
}

// Reset restores the seeded state and idles the simulation.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.unlock()
	s.load()
	s.emit(journal.ActorAdmin, journal.ActionReset, "", true, nil)
}

func (s *Store) setRecStatus(id string, status station.RecommendationStatus) bool {
	matched := false
	for i := range s.recs {
		if s.recs[i].ID == id {
			s.recs[i].Status = status
			matched = true
		}
	}
	return matched
}
