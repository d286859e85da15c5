package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCounterfactualOutput(t *testing.T) {
	out, err := BuiltIn().Output(KindCounterfactual)
	if err != nil {
		t.Fatalf("output: %v", err)
	}
	if out["scenario"] != KindCounterfactual {
		t.Fatalf("unexpected scenario %v", out["scenario"])
	}
	if _, ok := out["failureDetails"]; ok {
		t.Fatalf("counterfactual output must not carry failure details")
	}
}

func TestFailureInjectionPatchesCounterfactual(t *testing.T) {
	out, err := BuiltIn().Output(KindFailureInjection)
	if err != nil {
		t.Fatalf("output: %v", err)
	}
	if out["scenario"] != KindFailureInjection {
		t.Fatalf("unexpected scenario %v", out["scenario"])
	}
	if _, ok := out["networkMetrics"]; !ok {
		t.Fatalf("expected counterfactual metrics to be kept")
	}
	details, ok := out["failureDetails"].(map[string]any)
	if !ok {
		t.Fatalf("missing failure details: %+v", out)
	}
	if details["stationId"] != "ST-003" || details["type"] != "charger_malfunction" || details["severity"] != "high" {
		t.Fatalf("unexpected failure details %+v", details)
	}
}

func TestOutputDoesNotAliasCatalog(t *testing.T) {
	c := BuiltIn()
	out, _ := c.Output(KindCounterfactual)
	out["scenario"] = "mutated"
	again, _ := c.Output(KindCounterfactual)
	if again["scenario"] != KindCounterfactual {
		t.Fatalf("catalog was mutated through returned output")
	}
}

func TestUnknownKind(t *testing.T) {
	_, err := BuiltIn().Output("meteor_strike")
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestLoadOverridesBuiltIn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	doc := `
failure_injection:
  description: battery bay flood
  output:
    impact:
      lostSwaps: 5
  failure:
    type: battery_issue
    station_id: ST-001
    severity: critical
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.Valid(KindCounterfactual) {
		t.Fatalf("built-in counterfactual should survive an override file")
	}
	out, err := c.Output(KindFailureInjection)
	if err != nil {
		t.Fatalf("output: %v", err)
	}
	details := out["failureDetails"].(map[string]any)
	if details["stationId"] != "ST-001" || details["type"] != "battery_issue" {
		t.Fatalf("override not applied: %+v", details)
	}
}
