// Package models defines the core domain models for RPA workflow analysis.
package models

import "strings"

// Platform identifies the RPA dialect a workflow definition was exported from.
type Platform string

const (
	PlatformUiPath    Platform = "UiPath"     // .xaml exports
	PlatformBluePrism Platform = "Blue Prism" // .bpprocess/.bpobject exports
	PlatformGeneric   Platform = "Generic"    // unknown dialect, best-effort parsing
)

// DetectPlatform derives the platform tag from a file name extension.
// Unrecognized extensions fall back to PlatformGeneric.
func DetectPlatform(fileName string) Platform {
	name := strings.ToLower(fileName)

	switch {
	case strings.HasSuffix(name, ".xaml"):
		return PlatformUiPath
	case strings.HasSuffix(name, ".bpprocess"), strings.HasSuffix(name, ".bpobject"), strings.HasSuffix(name, ".bpskill"):
		return PlatformBluePrism
	default:
		return PlatformGeneric
	}
}

// Activity is one structural unit in a workflow definition: the element's
// local name stripped of namespace, plus a human-readable display name.
// Activities have no identity beyond their position in the sequence.
type Activity struct {
	Type        string `json:"type"`
	DisplayName string `json:"display_name"`
}

// Variable is a declared data item. DefaultValue and DataType are
// dialect-dependent and may be empty. Duplicate names are kept as-is.
type Variable struct {
	Name         string `json:"name"          validate:"required"`
	DefaultValue string `json:"default_value,omitempty"`
	DataType     string `json:"data_type,omitempty"`
}

// ParsedWorkflow is the normalized result of parsing one workflow definition
// file. It is created once per uploaded file, consumed immediately by the
// metrics, review and migration components, then discarded.
type ParsedWorkflow struct {
	Platform     Platform   `json:"platform"`
	Activities   []Activity `json:"activities"`
	Variables    []Variable `json:"variables"`
	NestingDepth int        `json:"nesting_depth" validate:"gte=0"`

	// Raw holds the underlying parsed document tree. It is only valid
	// within the analysis call that produced it and is never serialized.
	Raw any `json:"-"`
}

// Snapshot bundles the workflow-level fields rules need without carrying the
// raw parse tree.
func (w *ParsedWorkflow) Snapshot(name string) WorkflowSnapshot {
	return WorkflowSnapshot{
		Name:          name,
		Platform:      w.Platform,
		NestingDepth:  w.NestingDepth,
		ActivityCount: len(w.Activities),
		VariableCount: len(w.Variables),
		Variables:     w.Variables,
	}
}

// WorkflowSnapshot is the rule-facing view of a parsed workflow.
type WorkflowSnapshot struct {
	Name          string     `json:"name"`
	Platform      Platform   `json:"platform"`
	NestingDepth  int        `json:"nesting_depth"`
	ActivityCount int        `json:"activity_count"`
	VariableCount int        `json:"variable_count"`
	Variables     []Variable `json:"variables"`
}
