package review

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botlens/botlens/pkg/models"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadRulesFile_ValidRules(t *testing.T) {
	path := writeRulesFile(t, `[
  {
    "id": "team-001",
    "name": "Max Activities",
    "rule_type": "activity_count",
    "config": {"threshold": 25},
    "severity": "Major",
    "is_active": true
  }
]`)

	rules, err := LoadRulesFile(path)
	require.NoError(t, err)
	require.Len(t, rules, 1)

	assert.Equal(t, models.CustomRuleActivityCount, rules[0].RuleType)
	assert.Equal(t, models.SeverityMajor, rules[0].Severity)
	assert.True(t, rules[0].IsActive)
}

func TestLoadRulesFile_UnknownRuleType_Rejected(t *testing.T) {
	path := writeRulesFile(t, `[
  {
    "id": "team-001",
    "name": "Bad Rule",
    "rule_type": "line_count",
    "config": {"threshold": 25},
    "severity": "Major",
    "is_active": true
  }
]`)

	_, err := LoadRulesFile(path)
	require.Error(t, err)
}

func TestLoadRulesFile_MalformedJSON_Rejected(t *testing.T) {
	path := writeRulesFile(t, `{"not": "an array"`)

	_, err := LoadRulesFile(path)
	require.Error(t, err)
}

func TestLoadRulesFile_MissingFile(t *testing.T) {
	_, err := LoadRulesFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
