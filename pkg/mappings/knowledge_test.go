package mappings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botlens/botlens/pkg/models"
)

func loadTestKB(t *testing.T) *KnowledgeBase {
	t.Helper()

	kb, err := Load()
	require.NoError(t, err)

	return kb
}

func TestLoad_EmbeddedTableValidates(t *testing.T) {
	kb := loadTestKB(t)

	assert.NotEmpty(t, kb.Entries())
}

func TestKnowledgeBase_Lookup_CaseInsensitive(t *testing.T) {
	kb := loadTestKB(t)

	entries, found := kb.Lookup("click")
	require.True(t, found)
	require.Len(t, entries, 1)

	assert.Equal(t, models.MappingDirect, entries[0].MappingType)
	assert.Equal(t, "Navigate (Click)", entries[0].TargetEquivalent)
}

func TestKnowledgeBase_Lookup_StripsNamespaceQualification(t *testing.T) {
	kb := loadTestKB(t)

	braced, found := kb.Lookup("{http://schemas.uipath.com/workflow}Click")
	require.True(t, found)
	assert.Equal(t, "Click", braced[0].SourceActivity)

	prefixed, found := kb.Lookup("ui:Click")
	require.True(t, found)
	assert.Equal(t, "Click", prefixed[0].SourceActivity)
}

func TestKnowledgeBase_Lookup_Miss(t *testing.T) {
	kb := loadTestKB(t)

	_, found := kb.Lookup("CompletelyUnknownActivity")
	assert.False(t, found)
}

func TestKnowledgeBase_ReverseLookup(t *testing.T) {
	kb := loadTestKB(t)

	entries := kb.ReverseLookup("write")
	require.NotEmpty(t, entries)
	assert.Equal(t, "Type Into", entries[0].SourceActivity)
}

func TestKnowledgeBase_Categorize_UsesTableCategory(t *testing.T) {
	kb := loadTestKB(t)

	assert.Equal(t, "UI", kb.Categorize("Click"))
	assert.Equal(t, "Error", kb.Categorize("Try Catch"))
}

func TestKnowledgeBase_Categorize_FallbackHeuristics(t *testing.T) {
	kb := loadTestKB(t)

	assert.Equal(t, "Control", kb.Categorize("FlowDecision"))
	assert.Equal(t, "Data", kb.Categorize("BuildDataTable"))
	assert.Equal(t, "Data", kb.Categorize("MergeDataColumns"))
	assert.Equal(t, "Workflow", kb.Categorize("InvokeWorkflowFile"))
	assert.Equal(t, "UI", kb.Categorize("DoubleClickImage"))
	assert.Equal(t, "Other", kb.Categorize("Quux"))
}

func TestLoadFrom_RejectsInvalidTable(t *testing.T) {
	_, err := LoadFrom([]byte(`{"version": 1, "mappings": []}`))
	require.Error(t, err)
}

func TestLoadFrom_RejectsUnknownMappingType(t *testing.T) {
	_, err := LoadFrom([]byte(`{
  "version": 1,
  "source_platform": "UiPath",
  "target_platform": "Blue Prism",
  "mappings": [
    {"source_activity": "Click", "mapping_type": "magic", "effort_estimate": 1, "category": "UI"}
  ]
}`))
	require.Error(t, err)
}
