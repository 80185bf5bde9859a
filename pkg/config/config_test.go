package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "botlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfigFile(t, `
log_level: debug
default_platform: UiPath
custom_rules_file: rules.json
knowledge_base_file: kb.json
tracing:
  enabled: true
  service_name: botlens-staging
`)

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "UiPath", config.DefaultPlatform)
	assert.Equal(t, "rules.json", config.CustomRulesFile)
	assert.Equal(t, "kb.json", config.KnowledgeBaseFile)
	assert.True(t, config.Tracing.Enabled)
	assert.Equal(t, "botlens-staging", config.Tracing.ServiceName)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, "default_platform: Blue Prism\n")

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "Blue Prism", config.DefaultPlatform)
	assert.Equal(t, "botlens", config.Tracing.ServiceName)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	path := writeConfigFile(t, "log_level: verbose\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidPlatform(t *testing.T) {
	path := writeConfigFile(t, "default_platform: AutomationAnywhere\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "log_level: [unterminated\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	config := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Equal(t, Default(), config)
}
