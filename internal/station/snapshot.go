package station

import "maps"

// Seed is the initial content of a store.
type Seed struct {
	Stations        []Station               `yaml:"stations"`
	Baselines       []Baseline              `yaml:"baselines"`
	Failures        []FailureEvent          `yaml:"failures"`
	Maintenance     []MaintenanceAction     `yaml:"maintenance"`
	Recommendations []NetworkRecommendation `yaml:"recommendations"`
}

// Snapshot is a point-in-time deep copy of the store collections.
type Snapshot struct {
	Stations          []Station               `json:"stations"`
	OperationalStates []OperationalState      `json:"operationalStates"`
	Failures          []FailureEvent          `json:"failureEvents"`
	Maintenance       []MaintenanceAction     `json:"maintenanceActions"`
	Recommendations   []NetworkRecommendation `json:"networkRecommendations"`
	Simulation        SimulationState         `json:"simulationState"`
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Stations:          append([]Station(nil), s.Stations...),
		OperationalStates: append([]OperationalState(nil), s.OperationalStates...),
		Failures:          make([]FailureEvent, len(s.Failures)),
		Maintenance:       append([]MaintenanceAction(nil), s.Maintenance...),
		Recommendations:   make([]NetworkRecommendation, len(s.Recommendations)),
		Simulation:        s.Simulation.Clone(),
	}
	for i, f := range s.Failures {
		out.Failures[i] = f.Clone()
	}
	for i, r := range s.Recommendations {
		out.Recommendations[i] = r.Clone()
	}
	return out
}

// Clone returns a copy of f that shares no slices with it.
func (f FailureEvent) Clone() FailureEvent {
	f.ErrorCodeSequence = append([]string(nil), f.ErrorCodeSequence...)
	f.AffectedComponents = append([]string(nil), f.AffectedComponents...)
	return f
}

// Clone returns a copy of r that shares no slices or pointers with it.
func (r NetworkRecommendation) Clone() NetworkRecommendation {
	r.AffectedStations = append([]string(nil), r.AffectedStations...)
	r.SuggestedActions = append([]string(nil), r.SuggestedActions...)
	r.EstimatedImpact = EstimatedImpact{
		Efficiency:        clonePtr(r.EstimatedImpact.Efficiency),
		Throughput:        clonePtr(r.EstimatedImpact.Throughput),
		CostSavings:       clonePtr(r.EstimatedImpact.CostSavings),
		WaitTimeReduction: clonePtr(r.EstimatedImpact.WaitTimeReduction),
	}
	return r
}

// Clone returns a copy of s. Output is copied one level deep.
func (s SimulationState) Clone() SimulationState {
	if s.Output != nil {
		s.Output = maps.Clone(s.Output)
	}
	s.StartTime = clonePtr(s.StartTime)
	s.EndTime = clonePtr(s.EndTime)
	return s
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
