package analysis

import (
	"time"

	"github.com/botlens/botlens/pkg/models"
)

// Report is the assembled deterministic result of one analysis. The caller
// owns persistence and serialization; the raw parse tree inside Workflow is
// excluded from any encoding.
type Report struct {
	ID           string                      `json:"id"`
	WorkflowName string                      `json:"workflow_name"`
	Platform     models.Platform             `json:"platform"`
	CreatedAt    time.Time                   `json:"created_at"`
	Workflow     *models.ParsedWorkflow      `json:"workflow"`
	Metrics      models.DeterministicMetrics `json:"metrics"`
	Complexity   models.ComplexityScore      `json:"complexity"`
	Review       models.ReviewResult         `json:"review"`
	Migration    models.MigrationStats       `json:"migration"`

	// Narrative is filled in after the fact by an optional enrichment
	// task. Nil when enrichment is disabled or failed.
	Narrative *models.Narrative `json:"narrative,omitempty"`
}

func (r *Report) stamp() {
	r.CreatedAt = time.Now().UTC()
}
