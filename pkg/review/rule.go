// Package review runs the static code-review rule catalog against a parsed
// workflow and aggregates findings into category scores, an overall score and
// a letter grade.
package review

import "github.com/botlens/botlens/pkg/models"

// PlatformAny marks a rule that applies to every dialect.
const PlatformAny models.Platform = "Any"

// CheckFunc inspects a workflow snapshot plus its activity sequence and
// returns zero or more findings. Checks must be side-effect free; a check
// that panics is isolated by the engine and contributes nothing.
type CheckFunc func(workflow models.WorkflowSnapshot, activities []models.Activity) []models.Finding

// Rule is one review check as data: stable identity, classification,
// applicability and the check closure. Adding a rule means appending a value
// here, not subclassing anything.
type Rule struct {
	ID          string
	Name        string
	Category    models.Category
	Severity    models.Severity
	Platform    models.Platform
	Description string
	Check       CheckFunc
}
