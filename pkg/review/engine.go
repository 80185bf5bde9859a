package review

import (
	"fmt"
	"log/slog"

	"github.com/botlens/botlens/pkg/models"
)

// Engine executes the selected rule catalog plus any active custom rules over
// one workflow. Engines are stateless between runs and safe for concurrent
// use.
type Engine struct {
	logger   *slog.Logger
	registry *Registry
}

func NewEngine(logger *slog.Logger, registry *Registry) *Engine {
	return &Engine{
		logger:   logger,
		registry: registry,
	}
}

// Review runs every applicable built-in rule and then the active custom
// rules, aggregating all findings into category scores, an overall score and
// a grade. One misbehaving rule never aborts the review: its contribution is
// zero findings.
func (e *Engine) Review(
	platform models.Platform,
	workflow models.WorkflowSnapshot,
	activities []models.Activity,
	customRules []models.CustomRule,
) models.ReviewResult {
	findings := []models.Finding{}

	for _, rule := range e.registry.ForPlatform(platform) {
		ruleFindings, err := e.runRule(rule, workflow, activities)
		if err != nil {
			e.logger.Error("rule execution failed, skipping rule",
				"rule_id", rule.ID,
				"error", err,
			)

			continue
		}

		findings = append(findings, ruleFindings...)
	}

	findings = append(findings, e.evaluateCustomRules(customRules, workflow)...)

	categoryScores := scoreCategories(findings)
	overall := overallScore(categoryScores)

	return models.ReviewResult{
		Findings:       findings,
		CategoryScores: categoryScores,
		OverallScore:   overall,
		Grade:          gradeFor(overall),
		SeverityCounts: countSeverities(findings),
	}
}

// runRule isolates one check: a panic inside a rule is converted to an error
// so the rest of the review continues.
func (e *Engine) runRule(
	rule Rule,
	workflow models.WorkflowSnapshot,
	activities []models.Activity,
) (findings []models.Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			findings = nil
			err = fmt.Errorf("rule '%s' panicked: %v", rule.ID, r)
		}
	}()

	return rule.Check(workflow, activities), nil
}
