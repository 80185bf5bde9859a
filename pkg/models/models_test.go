package models

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPlatform_ByExtension(t *testing.T) {
	tests := []struct {
		fileName string
		expected Platform
	}{
		{"Main.xaml", PlatformUiPath},
		{"INVOICE.XAML", PlatformUiPath},
		{"Process1.bpprocess", PlatformBluePrism},
		{"Utility.bpobject", PlatformBluePrism},
		{"Skill.bpskill", PlatformBluePrism},
		{"workflow.xml", PlatformGeneric},
		{"noextension", PlatformGeneric},
		{"", PlatformGeneric},
	}

	for _, test := range tests {
		t.Run(test.fileName, func(t *testing.T) {
			assert.Equal(t, test.expected, DetectPlatform(test.fileName))
		})
	}
}

func TestParsedWorkflow_Snapshot(t *testing.T) {
	workflow := &ParsedWorkflow{
		Platform: PlatformUiPath,
		Activities: []Activity{
			{Type: "Assign", DisplayName: "Assign counter"},
			{Type: "Click", DisplayName: "Click submit"},
		},
		Variables:    []Variable{{Name: "counter", DataType: "x:Int32"}},
		NestingDepth: 3,
		Raw:          struct{}{},
	}

	snapshot := workflow.Snapshot("InvoiceBot")

	assert.Equal(t, "InvoiceBot", snapshot.Name)
	assert.Equal(t, PlatformUiPath, snapshot.Platform)
	assert.Equal(t, 2, snapshot.ActivityCount)
	assert.Equal(t, 1, snapshot.VariableCount)
	assert.Equal(t, 3, snapshot.NestingDepth)
	assert.Equal(t, workflow.Variables, snapshot.Variables)
}

func TestCustomRule_Validation(t *testing.T) {
	validate := validator.New()

	valid := CustomRule{
		Name:     "No giant workflows",
		RuleType: CustomRuleActivityCount,
		Config:   map[string]any{"threshold": 40.0},
		Severity: SeverityMajor,
		IsActive: true,
	}
	require.NoError(t, validate.Struct(valid))

	tests := []struct {
		name   string
		mutate func(rule *CustomRule)
	}{
		{"short name", func(rule *CustomRule) { rule.Name = "ab" }},
		{"unknown rule type", func(rule *CustomRule) { rule.RuleType = "webhook" }},
		{"missing config", func(rule *CustomRule) { rule.Config = nil }},
		{"unknown severity", func(rule *CustomRule) { rule.Severity = "Blocker" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rule := valid
			test.mutate(&rule)

			assert.Error(t, validate.Struct(rule))
		})
	}
}

func TestReviewCategories_CoverBuiltInRuleCategories(t *testing.T) {
	assert.Len(t, ReviewCategories, 6)
	assert.Contains(t, ReviewCategories, CategoryErrorHandling)
	assert.Contains(t, ReviewCategories, CategorySecurity)
	assert.NotContains(t, ReviewCategories, CategoryCustom)
}
