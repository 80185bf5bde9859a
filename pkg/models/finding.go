package models

// Category groups findings by the quality concern they touch.
type Category string

const (
	CategoryNaming          Category = "Naming"
	CategoryErrorHandling   Category = "ErrorHandling"
	CategoryPerformance     Category = "Performance"
	CategorySecurity        Category = "Security"
	CategoryMaintainability Category = "Maintainability"
	CategoryStandards       Category = "Standards"
	CategoryCustom          Category = "Custom"
)

// ReviewCategories lists the built-in categories that participate in
// category scoring, in reporting order. Custom findings are reported but do
// not carry a category score.
var ReviewCategories = []Category{
	CategoryNaming,
	CategoryErrorHandling,
	CategoryPerformance,
	CategorySecurity,
	CategoryMaintainability,
	CategoryStandards,
}

// Severity is the ordinal urgency of a finding: Critical > Major > Minor > Info.
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityMajor    Severity = "Major"
	SeverityMinor    Severity = "Minor"
	SeverityInfo     Severity = "Info"
)

// Finding is one discrete code-review observation. Findings are immutable
// value objects; every finding carries a non-empty rule ID and a severity
// from the fixed enumeration.
type Finding struct {
	Category       Category `json:"category"        validate:"required"`
	Severity       Severity `json:"severity"        validate:"required,oneof=Critical Major Minor Info"`
	RuleID         string   `json:"rule_id"         validate:"required"`
	RuleName       string   `json:"rule_name"`
	Message        string   `json:"message"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
	ActivityName   string   `json:"activity_name,omitempty"`
	Impact         string   `json:"impact,omitempty"`
	Effort         string   `json:"effort,omitempty"`
}

// SeverityCounts summarizes findings per severity tier.
type SeverityCounts struct {
	Critical int `json:"critical"`
	Major    int `json:"major"`
	Minor    int `json:"minor"`
	Info     int `json:"info"`
	Total    int `json:"total"`
}

// ReviewResult is the aggregate outcome of one code review run.
type ReviewResult struct {
	Findings       []Finding        `json:"findings"`
	CategoryScores map[Category]int `json:"category_scores"`
	OverallScore   float64          `json:"overall_score" validate:"gte=0,lte=100"`
	Grade          string           `json:"grade"         validate:"oneof=A B C D F"`
	SeverityCounts SeverityCounts   `json:"severity_counts"`
}
