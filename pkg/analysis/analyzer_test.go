package analysis

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botlens/botlens/pkg/mappings"
	"github.com/botlens/botlens/pkg/models"
	"github.com/botlens/botlens/pkg/parser"
)

const uiPathWorkflow = `<?xml version="1.0" encoding="utf-8"?>
<Activity xmlns="http://schemas.microsoft.com/netfx/2009/xaml/activities">
  <Variable Name="invoiceID" Default="0" TypeArguments="x:Int32" />
  <Sequence DisplayName="Process invoice">
    <Click DisplayName="Open invoice" />
    <TypeInto DisplayName="Enter amount" />
    <PythonScript DisplayName="Validate totals" />
  </Sequence>
</Activity>`

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()

	kb, err := mappings.Load()
	require.NoError(t, err)

	return NewAnalyzer(slog.Default(), kb, nil)
}

func TestAnalyzer_Analyze_ProducesFullReport(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	report, err := analyzer.Analyze(context.Background(), Request{
		WorkflowName: "InvoiceBot",
		Platform:     models.PlatformUiPath,
		Raw:          []byte(uiPathWorkflow),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "InvoiceBot", report.WorkflowName)
	assert.Equal(t, models.PlatformUiPath, report.Platform)
	assert.False(t, report.CreatedAt.IsZero())
	assert.Nil(t, report.Narrative)

	require.NotNil(t, report.Workflow)
	assert.Equal(t, report.Metrics.ActivityCount, len(report.Workflow.Activities))
	assert.Equal(t, report.Metrics.ActivityCount, report.Migration.TotalActivities)

	assert.NotEmpty(t, report.Complexity.Level)
	assert.NotEmpty(t, report.Review.Grade)
	assert.Len(t, report.Review.CategoryScores, len(models.ReviewCategories))
}

func TestAnalyzer_Analyze_MigrationReflectsActivityMix(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	report, err := analyzer.Analyze(context.Background(), Request{
		WorkflowName: "InvoiceBot",
		Platform:     models.PlatformUiPath,
		Raw:          []byte(uiPathWorkflow),
	})
	require.NoError(t, err)

	// Only Click has a knowledge base row; the nested PythonScript and the
	// structural elements classify as incompatible.
	assert.Equal(t, 1, report.Migration.DirectMappings)
	assert.Equal(t, 4, report.Migration.IncompatibleMappings)
	assert.Len(t, report.Migration.Breakdown, report.Migration.TotalActivities)
	assert.Greater(t, report.Migration.TotalEffortHours, 0.0)
}

func TestAnalyzer_Analyze_CustomRulesContribute(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	report, err := analyzer.Analyze(context.Background(), Request{
		WorkflowName: "InvoiceBot",
		Platform:     models.PlatformUiPath,
		Raw:          []byte(uiPathWorkflow),
		CustomRules: []models.CustomRule{{
			ID:       "team-limit",
			Name:     "Keep workflows small",
			RuleType: models.CustomRuleActivityCount,
			Config:   map[string]any{"threshold": 1.0},
			Severity: models.SeverityInfo,
			IsActive: true,
		}},
	})
	require.NoError(t, err)

	var customFindings int

	for _, finding := range report.Review.Findings {
		if finding.Category == models.CategoryCustom {
			customFindings++
		}
	}

	assert.Equal(t, 1, customFindings)
}

func TestAnalyzer_Analyze_EmptyDocumentFails(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	_, err := analyzer.Analyze(context.Background(), Request{
		WorkflowName: "Empty",
		Platform:     models.PlatformUiPath,
		Raw:          nil,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrEmptyDocument))
}

func TestAnalyzer_Analyze_UnreadableDocumentFails(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	_, err := analyzer.Analyze(context.Background(), Request{
		WorkflowName: "Garbage",
		Platform:     models.PlatformGeneric,
		Raw:          []byte("this is not markup at all"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrUnreadableDocument))
}

func TestAnalyzer_Analyze_DeterministicAcrossRuns(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	request := Request{
		WorkflowName: "InvoiceBot",
		Platform:     models.PlatformUiPath,
		Raw:          []byte(uiPathWorkflow),
	}

	first, err := analyzer.Analyze(context.Background(), request)
	require.NoError(t, err)

	second, err := analyzer.Analyze(context.Background(), request)
	require.NoError(t, err)

	assert.Equal(t, first.Metrics, second.Metrics)
	assert.Equal(t, first.Complexity, second.Complexity)
	assert.Equal(t, first.Review, second.Review)
	assert.Equal(t, first.Migration, second.Migration)
	assert.NotEqual(t, first.ID, second.ID)
}
