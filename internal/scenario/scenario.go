package scenario

import (
	"errors"
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// Simulation kinds.
const (
	KindCounterfactual   = "counterfactual"
	KindFailureInjection = "failure_injection"
)

// ErrUnknownKind is returned for a simulation kind with no scenario.
var ErrUnknownKind = errors.New("unknown simulation kind")

// FailureScenario describes the fault injected into a failure-injection run.
type FailureScenario struct {
	Type        string `yaml:"type" json:"type"`
	StationID   string `yaml:"station_id" json:"stationId"`
	Severity    string `yaml:"severity" json:"severity"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Scenario is the canned result of one simulation kind.
type Scenario struct {
	Description string           `yaml:"description,omitempty"`
	Output      map[string]any   `yaml:"output"`
	Failure     *FailureScenario `yaml:"failure,omitempty"`
}

// Catalog maps simulation kinds to scenarios.
type Catalog map[string]Scenario

// Load reads a YAML catalog from disk. Kinds it does not define keep their
// built-in scenario.
func Load(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	var overrides Catalog
	if err := yaml.Unmarshal(b, &overrides); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	c := BuiltIn()
	for k, v := range overrides {
		c[k] = v
	}
	return c, nil
}

// Output builds the simulation output for kind. A failure-injection run
// reports the counterfactual output patched with the injected fault.
func (c Catalog) Output(kind string) (map[string]any, error) {
	sc, ok := c[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if kind != KindFailureInjection {
		return maps.Clone(sc.Output), nil
	}
	out := maps.Clone(c[KindCounterfactual].Output)
	if out == nil {
		out = map[string]any{}
	}
	for k, v := range sc.Output {
		out[k] = v
	}
	out["scenario"] = KindFailureInjection
	if sc.Failure != nil {
		out["failureDetails"] = map[string]any{
			"type":      sc.Failure.Type,
			"stationId": sc.Failure.StationID,
			"severity":  sc.Failure.Severity,
		}
	}
	return out, nil
}

// Valid reports whether kind has a scenario.
func (c Catalog) Valid(kind string) bool {
	_, ok := c[kind]
	return ok
}
