package station

import "time"

// Severity ranks failures, maintenance actions and recommendations.
type Severity string

// Severity constants.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// FailureCategory classifies a failure event.
type FailureCategory string

// Failure categories.
const (
	CategoryChargerMalfunction FailureCategory = "charger_malfunction"
	CategoryBatteryIssue       FailureCategory = "battery_issue"
	CategoryNetworkError       FailureCategory = "network_error"
	CategoryTemperatureAlert   FailureCategory = "temperature_alert"
	CategoryQueueOverflow      FailureCategory = "queue_overflow"
)

// FailureEvent is a detected anomaly at a station. Only Acknowledged changes after creation.
type FailureEvent struct {
	ID                    string          `json:"id" yaml:"id"`
	Timestamp             time.Time       `json:"timestamp" yaml:"timestamp"`
	StationID             string          `json:"stationId" yaml:"station_id"`
	StationName           string          `json:"stationName" yaml:"station_name"`
	Category              FailureCategory `json:"category" yaml:"category"`
	Severity              Severity        `json:"severity" yaml:"severity"`
	ErrorCodeSequence     []string        `json:"errorCodeSequence" yaml:"error_code_sequence"`
	PredictedRootCause    string          `json:"predictedRootCause" yaml:"predicted_root_cause"`
	RecurrenceProbability float64         `json:"recurrenceProbability" yaml:"recurrence_probability"`
	Description           string          `json:"description" yaml:"description"`
	AffectedComponents    []string        `json:"affectedComponents" yaml:"affected_components"`
	EstimatedDowntime     int             `json:"estimatedDowntime" yaml:"estimated_downtime"` // minutes
	Acknowledged          bool            `json:"acknowledged" yaml:"acknowledged"`
}

// ActionStatus is the lifecycle state of a maintenance action.
type ActionStatus string

// Maintenance action statuses.
const (
	ActionPending      ActionStatus = "pending"
	ActionAcknowledged ActionStatus = "acknowledged"
	ActionDismissed    ActionStatus = "dismissed"
	ActionEscalated    ActionStatus = "escalated"
	ActionCompleted    ActionStatus = "completed"
)

// Valid reports whether s is a known action status.
func (s ActionStatus) Valid() bool {
	switch s {
	case ActionPending, ActionAcknowledged, ActionDismissed, ActionEscalated, ActionCompleted:
		return true
	}
	return false
}

// MaintenanceAction is an operator-tracked remediation task.
type MaintenanceAction struct {
	ID                string       `json:"id" yaml:"id"`
	Title             string       `json:"title" yaml:"title"`
	Description       string       `json:"description" yaml:"description"`
	StationID         string       `json:"stationId" yaml:"station_id"`
	StationName       string       `json:"stationName" yaml:"station_name"`
	Priority          Severity     `json:"priority" yaml:"priority"`
	Status            ActionStatus `json:"status" yaml:"status"`
	Category          string       `json:"category" yaml:"category"`
	EstimatedDuration int          `json:"estimatedDuration" yaml:"estimated_duration"` // minutes
	CreatedAt         time.Time    `json:"createdAt" yaml:"created_at"`
	DueDate           time.Time    `json:"dueDate" yaml:"due_date"`
	RelatedFailureID  string       `json:"relatedFailureId,omitempty" yaml:"related_failure_id"`
}

// RecommendationType classifies a network recommendation.
type RecommendationType string

// Recommendation types.
const (
	RecCapacityExpansion       RecommendationType = "capacity_expansion"
	RecLoadBalancing           RecommendationType = "load_balancing"
	RecMaintenanceRequired     RecommendationType = "maintenance_required"
	RecInventoryRedistribution RecommendationType = "inventory_redistribution"
	RecOperationalOptimization RecommendationType = "operational_optimization"
)

// RecommendationStatus is the lifecycle state of a recommendation.
type RecommendationStatus string

// Recommendation statuses.
const (
	RecPending    RecommendationStatus = "pending"
	RecInProgress RecommendationStatus = "in_progress"
	RecCompleted  RecommendationStatus = "completed"
	RecDismissed  RecommendationStatus = "dismissed"
)

// EstimatedImpact is the advisory effect of applying a recommendation.
type EstimatedImpact struct {
	Efficiency        *float64 `json:"efficiency,omitempty" yaml:"efficiency"`
	Throughput        *float64 `json:"throughput,omitempty" yaml:"throughput"`
	CostSavings       *float64 `json:"costSavings,omitempty" yaml:"cost_savings"`
	WaitTimeReduction *float64 `json:"waitTimeReduction,omitempty" yaml:"wait_time_reduction"`
}

// NetworkRecommendation is an advisory record created by admins and advanced by operators.
type NetworkRecommendation struct {
	ID                       string               `json:"id" yaml:"id"`
	Type                     RecommendationType   `json:"type" yaml:"type"`
	Priority                 Severity             `json:"priority" yaml:"priority"`
	Title                    string               `json:"title" yaml:"title"`
	Description              string               `json:"description" yaml:"description"`
	AffectedStations         []string             `json:"affectedStations" yaml:"affected_stations"`
	EstimatedImpact          EstimatedImpact      `json:"estimatedImpact" yaml:"estimated_impact"`
	SuggestedActions         []string             `json:"suggestedActions" yaml:"suggested_actions"`
	ImplementationComplexity string               `json:"implementationComplexity" yaml:"implementation_complexity"`
	EstimatedCompletionTime  float64              `json:"estimatedCompletionTime" yaml:"estimated_completion_time"` // hours
	CreatedAt                time.Time            `json:"createdAt" yaml:"created_at"`
	Status                   RecommendationStatus `json:"status" yaml:"status"`
}

// SimulationStatus is the state of the single simulation slot.
type SimulationStatus string

// Simulation statuses.
const (
	SimIdle      SimulationStatus = "idle"
	SimRunning   SimulationStatus = "running"
	SimCompleted SimulationStatus = "completed"
)

// SimulationState is the process-wide simulation record.
type SimulationState struct {
	Status    SimulationStatus `json:"status"`
	Output    map[string]any   `json:"output"`
	StartTime *time.Time       `json:"startTime"`
	EndTime   *time.Time       `json:"endTime"`
}

// IdleSimulation returns the reset simulation state.
func IdleSimulation() SimulationState {
	return SimulationState{Status: SimIdle}
}
