package models

// DeterministicMetrics are the structural measurements derived from a parsed
// workflow. They are a pure function of the ParsedWorkflow and immutable once
// computed.
type DeterministicMetrics struct {
	ActivityCount        int  `json:"activity_count"         validate:"gte=0"`
	VariableCount        int  `json:"variable_count"         validate:"gte=0"`
	NestingDepth         int  `json:"nesting_depth"          validate:"gte=0"`
	InvokedWorkflowCount int  `json:"invoked_workflow_count" validate:"gte=0"`
	HasCustomCode        bool `json:"has_custom_code"`
}

// ComplexityLevel buckets a complexity score into four tiers.
type ComplexityLevel string

const (
	ComplexityLow      ComplexityLevel = "Low"       // score < 20
	ComplexityMedium   ComplexityLevel = "Medium"    // score < 50
	ComplexityHigh     ComplexityLevel = "High"      // score < 100
	ComplexityVeryHigh ComplexityLevel = "Very High" // score >= 100
)

// ComplexityScore is the weighted deterministic summary of workflow size and
// depth.
type ComplexityScore struct {
	Score int             `json:"score" validate:"gte=0"`
	Level ComplexityLevel `json:"level"`
}
