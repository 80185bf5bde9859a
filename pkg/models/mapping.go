package models

// MappingType classifies how portable a source-platform activity is to the
// target platform.
type MappingType string

const (
	MappingDirect       MappingType = "direct"
	MappingPartial      MappingType = "partial"
	MappingComplex      MappingType = "complex"
	MappingIncompatible MappingType = "incompatible"
)

// ActivityMapping is one knowledge-base row: a known UiPath activity, its
// Blue Prism equivalent, and the estimated conversion effort. Rows are static
// and read-only after load.
type ActivityMapping struct {
	SourceActivity   string      `json:"source_activity"   validate:"required"`
	TargetEquivalent string      `json:"target_equivalent"`
	MappingType      MappingType `json:"mapping_type"      validate:"required,oneof=direct partial complex incompatible"`
	EffortEstimate   float64     `json:"effort_estimate"   validate:"gte=0"`
	IsDeprecated     bool        `json:"is_deprecated"`
	Category         string      `json:"category"`
	ConversionNotes  string      `json:"conversion_notes,omitempty"`
}

// ActivityPortability is the per-activity migration breakdown: the mapping
// found for one activity (nil when the knowledge base has no row for it) and
// its resolved classification.
type ActivityPortability struct {
	SourceActivity string           `json:"source_activity"`
	Mapping        *ActivityMapping `json:"mapping,omitempty"`
	MappingType    MappingType      `json:"mapping_type"`
	Category       string           `json:"category"`
}

// MigrationStats aggregates portability over one workflow's activity set.
type MigrationStats struct {
	TotalActivities      int                   `json:"total_activities"`
	DirectMappings       int                   `json:"direct_mappings"`
	PartialMappings      int                   `json:"partial_mappings"`
	ComplexMappings      int                   `json:"complex_mappings"`
	IncompatibleMappings int                   `json:"incompatible_mappings"`
	TotalEffortHours     float64               `json:"total_effort_hours"`
	CompatibilityScore   int                   `json:"compatibility_score" validate:"gte=0,lte=100"`
	Breakdown            []ActivityPortability `json:"breakdown,omitempty"`
}
