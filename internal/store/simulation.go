package store

import (
	"swapnet-ops/internal/journal"
	"swapnet-ops/internal/station"
)

// Simulation returns a copy of the current simulation state.
func (s *Store) Simulation() station.SimulationState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sim.Clone()
}

// SetSimulationState replaces the simulation state. Any pending run completion is superseded.
func (s *Store) SetSimulationState(st station.SimulationState) {
	s.mu.Lock()
	defer s.unlock()
	s.sim = st.Clone()
	s.simGen++
	s.emit(journal.ActorAdmin, journal.ActionSetSimulationState, "", true, st)
}

// ResetSimulation returns the simulation to idle. Any pending run completion is superseded.
func (s *Store) ResetSimulation() {
	s.mu.Lock()
	defer s.unlock()
	s.sim = station.IdleSimulation()
	s.simGen++
	s.emit(journal.ActorAdmin, journal.ActionResetSimulation, "", true, nil)
}

// BeginSimulation moves the simulation to running and returns the run
// generation that CompleteSimulation must present.
func (s *Store) BeginSimulation(kind string) uint64 {
	s.mu.Lock()
	defer s.unlock()
	start := s.now().UTC()
	s.sim = station.SimulationState{Status: station.SimRunning, StartTime: &start}
	s.simGen++
	s.emit(journal.ActorAdmin, journal.ActionRunSimulationStart, kind, true, s.sim)
	return s.simGen
}

// CompleteSimulation moves a running simulation to completed with output,
// keeping the original start time. It does nothing and returns false when
// gen is no longer the current run.
func (s *Store) CompleteSimulation(gen uint64, output map[string]any) bool {
	s.mu.Lock()
	defer s.unlock()
	if gen != s.simGen || s.sim.Status != station.SimRunning {
		return false
	}
	end := s.now().UTC()
	s.sim = station.SimulationState{
		Status:    station.SimCompleted,
		Output:    output,
		StartTime: s.sim.StartTime,
		EndTime:   &end,
	}
	s.emit(journal.ActorAdmin, journal.ActionRunSimulationComplete, "", true, s.sim)
	return true
}
