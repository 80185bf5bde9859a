package review

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/botlens/botlens/pkg/models"
	"github.com/xeipuuv/gojsonschema"
)

// customConfigSchemas validate the stored config payload per rule type
// before evaluation. A config that fails its schema makes the rule
// non-firing, never fatal.
var customConfigSchemas = map[models.CustomRuleType]map[string]any{
	models.CustomRuleActivityCount: {
		"type":                 "object",
		"required":             []string{"threshold"},
		"additionalProperties": true,
		"properties": map[string]any{
			"threshold": map[string]any{"type": "number", "minimum": 0},
		},
	},
	models.CustomRuleNestingDepth: {
		"type":                 "object",
		"required":             []string{"threshold"},
		"additionalProperties": true,
		"properties": map[string]any{
			"threshold": map[string]any{"type": "number", "minimum": 0},
		},
	},
	models.CustomRuleRegex: {
		"type":                 "object",
		"required":             []string{"pattern"},
		"additionalProperties": true,
		"properties": map[string]any{
			"pattern": map[string]any{"type": "string", "minLength": 1},
		},
	},
}

// evaluateCustomRules runs every active user-defined rule against the
// workflow snapshot. Each rule is independent: an invalid config or pattern
// is treated as a non-match and the batch continues.
func (e *Engine) evaluateCustomRules(rules []models.CustomRule, workflow models.WorkflowSnapshot) []models.Finding {
	var findings []models.Finding

	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}

		if err := validateCustomConfig(rule); err != nil {
			e.logger.Warn("custom rule config invalid, treating as non-match",
				"rule_id", rule.ID,
				"rule_type", rule.RuleType,
				"error", err,
			)

			continue
		}

		finding, fired := evaluateCustomRule(rule, workflow)
		if fired {
			findings = append(findings, finding)
		}
	}

	return findings
}

func validateCustomConfig(rule models.CustomRule) error {
	schema, known := customConfigSchemas[rule.RuleType]
	if !known {
		return fmt.Errorf("unknown rule type '%s'", rule.RuleType)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(rule.Config),
	)
	if err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	if !result.Valid() {
		return fmt.Errorf("config does not match schema for '%s'", rule.RuleType)
	}

	return nil
}

func evaluateCustomRule(rule models.CustomRule, workflow models.WorkflowSnapshot) (models.Finding, bool) {
	switch rule.RuleType {
	case models.CustomRuleActivityCount:
		threshold := configNumber(rule.Config, "threshold")
		if float64(workflow.ActivityCount) > threshold {
			return customFinding(rule,
				fmt.Sprintf("Activity count %d exceeds threshold %g", workflow.ActivityCount, threshold),
			), true
		}
	case models.CustomRuleNestingDepth:
		threshold := configNumber(rule.Config, "threshold")
		if float64(workflow.NestingDepth) > threshold {
			return customFinding(rule,
				fmt.Sprintf("Nesting depth %d exceeds threshold %g", workflow.NestingDepth, threshold),
			), true
		}
	case models.CustomRuleRegex:
		pattern, _ := rule.Config["pattern"].(string)

		matcher, err := regexp.Compile(pattern)
		if err != nil {
			// Invalid pattern is a non-match, not a failure.
			return models.Finding{}, false
		}

		if matched, subject := matchWorkflowText(matcher, workflow); matched {
			finding := customFinding(rule,
				fmt.Sprintf("Pattern %q matched %q", pattern, subject),
			)
			finding.ActivityName = subject

			return finding, true
		}
	}

	return models.Finding{}, false
}

// matchWorkflowText applies the pattern to the workflow's textual fields:
// its name first, then variable names.
func matchWorkflowText(matcher *regexp.Regexp, workflow models.WorkflowSnapshot) (bool, string) {
	if matcher.MatchString(workflow.Name) {
		return true, workflow.Name
	}

	for _, variable := range workflow.Variables {
		if matcher.MatchString(variable.Name) {
			return true, variable.Name
		}
	}

	return false, ""
}

func configNumber(config map[string]any, key string) float64 {
	switch v := config[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func customFinding(rule models.CustomRule, message string) models.Finding {
	ruleID := rule.ID
	if ruleID == "" {
		ruleID = "CUSTOM-" + strings.ToUpper(strings.ReplaceAll(rule.Name, " ", "-"))
	}

	return models.Finding{
		Category:       models.CategoryCustom,
		Severity:       rule.Severity,
		RuleID:         ruleID,
		RuleName:       rule.Name,
		Message:        message,
		Description:    fmt.Sprintf("User-defined %s rule", rule.RuleType),
		Recommendation: "Review the workflow against this organization-specific rule",
		Impact:         "Custom",
		Effort:         "Low",
	}
}
