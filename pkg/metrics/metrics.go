// Package metrics derives deterministic structural measurements and the
// complexity score from a parsed workflow.
package metrics

import (
	"strings"

	"github.com/botlens/botlens/pkg/models"
)

// Extract computes DeterministicMetrics from a parsed workflow. It is a
// total, pure function of its input.
func Extract(workflow *models.ParsedWorkflow) models.DeterministicMetrics {
	invoked := 0
	hasCustomCode := false

	for _, activity := range workflow.Activities {
		if strings.Contains(activity.Type, "Invoke") {
			invoked++
		}

		if strings.Contains(activity.Type, "Code") || strings.Contains(activity.Type, "Script") {
			hasCustomCode = true
		}
	}

	return models.DeterministicMetrics{
		ActivityCount:        len(workflow.Activities),
		VariableCount:        len(workflow.Variables),
		NestingDepth:         workflow.NestingDepth,
		InvokedWorkflowCount: invoked,
		HasCustomCode:        hasCustomCode,
	}
}
