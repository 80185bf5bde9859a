package models

import "time"

// CustomRuleType enumerates the supported user-defined check kinds.
type CustomRuleType string

const (
	CustomRuleRegex         CustomRuleType = "regex"          // pattern match against workflow text
	CustomRuleActivityCount CustomRuleType = "activity_count" // threshold on activity count
	CustomRuleNestingDepth  CustomRuleType = "nesting_depth"  // threshold on nesting depth
)

// CustomRule is a user-authored, persisted check evaluated alongside the
// built-in rules. The analysis core only reads active rules; creation and
// editing happen outside the core.
type CustomRule struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"      validate:"required,min=3"`
	RuleType  CustomRuleType `json:"rule_type" validate:"required,oneof=regex activity_count nesting_depth"`
	Config    map[string]any `json:"config"    validate:"required"`
	Severity  Severity       `json:"severity"  validate:"required,oneof=Critical Major Minor Info"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
}
