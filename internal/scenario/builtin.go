package scenario

// BuiltIn returns the default scenario catalog.
func BuiltIn() Catalog {
	return Catalog{
		KindCounterfactual: {
			Description: "Replays the last day of demand against the current station configuration.",
			Output: map[string]any{
				"scenario":             KindCounterfactual,
				"simulationDurationHr": 24,
				"networkMetrics": map[string]any{
					"totalSwaps":          1842,
					"averageWaitTimeMin":  6.4,
					"peakQueueLength":     14,
					"chargerUtilization":  0.78,
					"batteryStockoutRisk": 0.12,
				},
				"bottlenecks": []any{
					map[string]any{"stationId": "ST-002", "reason": "queue exceeds charger capacity at evening peak"},
					map[string]any{"stationId": "ST-004", "reason": "charged inventory below 10 batteries for 3h"},
				},
				"recommendations": []any{
					"Add two chargers at ST-002",
					"Rebalance 15 charged batteries from ST-001 to ST-004",
				},
			},
		},
		KindFailureInjection: {
			Description: "Counterfactual run with a charger failure injected at one station.",
			Output: map[string]any{
				"impact": map[string]any{
					"lostSwaps":          212,
					"averageWaitTimeMin": 11.9,
					"divertedVehicles":   87,
				},
			},
			Failure: &FailureScenario{
				Type:        "charger_malfunction",
				StationID:   "ST-003",
				Severity:    "high",
				Description: "Two of four chargers trip on overcurrent during the morning peak.",
			},
		},
	}
}
