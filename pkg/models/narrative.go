package models

// Narrative is the optional AI-generated prose overlay for a report. It is
// additive and nullable: the deterministic report is complete without it and
// is never altered by enrichment succeeding, failing or timing out.
type Narrative struct {
	Summary         string   `json:"summary"`
	Risks           []string `json:"risks,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	Model           string   `json:"model,omitempty"`
}
