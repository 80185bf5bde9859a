package review

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/botlens/botlens/pkg/models"
)

func findingsWith(category models.Category, severity models.Severity, count int) []models.Finding {
	findings := make([]models.Finding, 0, count)
	for range count {
		findings = append(findings, models.Finding{
			Category: category,
			Severity: severity,
			RuleID:   "TEST-001",
		})
	}

	return findings
}

func TestScoreCategories_DeductionsPerSeverity(t *testing.T) {
	findings := []models.Finding{
		{Category: models.CategorySecurity, Severity: models.SeverityCritical, RuleID: "a"},
		{Category: models.CategorySecurity, Severity: models.SeverityMinor, RuleID: "b"},
		{Category: models.CategoryNaming, Severity: models.SeverityInfo, RuleID: "c"},
	}

	scores := scoreCategories(findings)

	assert.Equal(t, 70, scores[models.CategorySecurity])
	assert.Equal(t, 98, scores[models.CategoryNaming])
	assert.Equal(t, 100, scores[models.CategoryErrorHandling])
}

func TestScoreCategories_FlooredAtZero(t *testing.T) {
	scores := scoreCategories(findingsWith(models.CategorySecurity, models.SeverityCritical, 6))

	assert.Equal(t, 0, scores[models.CategorySecurity])
}

func TestCategoryWeights_SumToOne(t *testing.T) {
	total := 0.0
	for _, weight := range categoryWeights {
		total += weight
	}

	assert.InDelta(t, 1.0, total, 0.0001)
}

func TestOverallScore_StaysWithinBounds(t *testing.T) {
	worst := scoreCategories(concat(
		findingsWith(models.CategorySecurity, models.SeverityCritical, 10),
		findingsWith(models.CategoryErrorHandling, models.SeverityCritical, 10),
		findingsWith(models.CategoryPerformance, models.SeverityCritical, 10),
		findingsWith(models.CategoryNaming, models.SeverityCritical, 10),
		findingsWith(models.CategoryMaintainability, models.SeverityCritical, 10),
		findingsWith(models.CategoryStandards, models.SeverityCritical, 10),
	))

	assert.InDelta(t, 0.0, overallScore(worst), 0.001)

	best := scoreCategories(nil)
	assert.InDelta(t, 100.0, overallScore(best), 0.001)
}

func concat(groups ...[]models.Finding) []models.Finding {
	var all []models.Finding
	for _, group := range groups {
		all = append(all, group...)
	}

	return all
}

func TestGradeFor_Thresholds(t *testing.T) {
	assert.Equal(t, "A", gradeFor(90))
	assert.Equal(t, "B", gradeFor(89.9))
	assert.Equal(t, "B", gradeFor(80))
	assert.Equal(t, "C", gradeFor(79.9))
	assert.Equal(t, "C", gradeFor(70))
	assert.Equal(t, "D", gradeFor(69.9))
	assert.Equal(t, "D", gradeFor(60))
	assert.Equal(t, "F", gradeFor(59.9))
}
