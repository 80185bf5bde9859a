// Package mappings holds the cross-platform activity compatibility knowledge
// base and the migration effort estimator built on it.
//
// The knowledge base is versionable static data: a JSON table embedded at
// build time, schema-validated and indexed once at process start, read-only
// afterwards. Concurrent analyses share one instance without synchronization.
package mappings

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/botlens/botlens/pkg/models"
)

//go:embed data/uipath_blueprism.json
var embeddedTable []byte

//go:embed data/schema.json
var tableSchema []byte

// table is the on-disk shape of a knowledge base file.
type table struct {
	Version        int                      `json:"version"`
	SourcePlatform string                   `json:"source_platform"`
	TargetPlatform string                   `json:"target_platform"`
	Mappings       []models.ActivityMapping `json:"mappings"`
}

// KnowledgeBase is the immutable activity mapping table for one platform
// pair, indexed for case-insensitive lookup.
type KnowledgeBase struct {
	sourcePlatform string
	targetPlatform string
	entries        []models.ActivityMapping
	bySource       map[string][]models.ActivityMapping
	byTarget       map[string][]models.ActivityMapping
}

// Load builds the knowledge base from the embedded UiPath to Blue Prism
// table.
func Load() (*KnowledgeBase, error) {
	return LoadFrom(embeddedTable)
}

// LoadFrom builds a knowledge base from raw table JSON, allowing the table to
// be swapped per target-platform pair. The data is validated against the
// table schema before indexing.
func LoadFrom(raw []byte) (*KnowledgeBase, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(tableSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("validate knowledge base: %w", err)
	}

	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, issue := range result.Errors() {
			issues = append(issues, issue.String())
		}

		return nil, fmt.Errorf("knowledge base does not match schema: %s", strings.Join(issues, "; "))
	}

	var data table
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode knowledge base: %w", err)
	}

	kb := &KnowledgeBase{
		sourcePlatform: data.SourcePlatform,
		targetPlatform: data.TargetPlatform,
		entries:        data.Mappings,
		bySource:       make(map[string][]models.ActivityMapping, len(data.Mappings)),
		byTarget:       make(map[string][]models.ActivityMapping, len(data.Mappings)),
	}

	for _, entry := range data.Mappings {
		sourceKey := strings.ToLower(entry.SourceActivity)
		kb.bySource[sourceKey] = append(kb.bySource[sourceKey], entry)

		if entry.TargetEquivalent != "" {
			targetKey := strings.ToLower(entry.TargetEquivalent)
			kb.byTarget[targetKey] = append(kb.byTarget[targetKey], entry)
		}
	}

	return kb, nil
}

// Entries returns every knowledge base row in table order.
func (kb *KnowledgeBase) Entries() []models.ActivityMapping {
	return kb.entries
}

// stripQualifier removes namespace qualification wrappers from an activity
// identifier: "{ns}Click" and "ui:Click" both resolve to "Click".
func stripQualifier(identifier string) string {
	name := identifier

	if idx := strings.LastIndex(name, "}"); idx >= 0 {
		name = name[idx+1:]
	}

	if idx := strings.LastIndex(name, "{"); idx >= 0 {
		name = name[idx+1:]
	}

	if idx := strings.LastIndex(name, ":"); idx >= 0 {
		name = name[idx+1:]
	}

	return name
}

// Lookup finds the mappings for a source activity by exact case-insensitive
// match after namespace stripping. A nil, false result is a lookup miss, not
// an error.
func (kb *KnowledgeBase) Lookup(activityName string) ([]models.ActivityMapping, bool) {
	entries, ok := kb.bySource[strings.ToLower(stripQualifier(activityName))]

	return entries, ok
}

// ReverseLookup finds the source activities that map onto a target-platform
// action.
func (kb *KnowledgeBase) ReverseLookup(targetAction string) []models.ActivityMapping {
	return kb.byTarget[strings.ToLower(targetAction)]
}

// Fallback categorization sets for activities absent from the table.
var (
	controlFlowTypes = map[string]struct{}{
		"If": {}, "ForEach": {}, "While": {}, "Switch": {},
		"FlowDecision": {}, "FlowSwitch": {}, "TryCatch": {}, "RetryScope": {},
	}
	dataTypes = map[string]struct{}{
		"Assign": {}, "WriteLine": {}, "ReadRange": {}, "WriteRange": {},
		"AppendLine": {}, "BuildDataTable": {}, "AddDataRow": {},
	}
)

// Categorize buckets an activity for breakdown reporting: the knowledge base
// category when the activity is known, otherwise a literal substring
// heuristic defaulting to "Other".
func (kb *KnowledgeBase) Categorize(activityName string) string {
	if entries, ok := kb.Lookup(activityName); ok && len(entries) > 0 {
		return entries[0].Category
	}

	name := stripQualifier(activityName)

	if _, ok := controlFlowTypes[name]; ok {
		return "Control"
	}

	if _, ok := dataTypes[name]; ok {
		return "Data"
	}

	if strings.Contains(name, "Data") {
		return "Data"
	}

	if strings.Contains(name, "Invoke") {
		return "Workflow"
	}

	if strings.Contains(name, "Click") || strings.Contains(name, "Type") || strings.Contains(name, "Web") {
		return "UI"
	}

	return "Other"
}
