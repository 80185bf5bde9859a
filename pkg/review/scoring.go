package review

import (
	"math"

	"github.com/botlens/botlens/pkg/models"
)

// severityDeductions are the per-finding point costs within a category.
var severityDeductions = map[models.Severity]int{
	models.SeverityCritical: 25,
	models.SeverityMajor:    15,
	models.SeverityMinor:    5,
	models.SeverityInfo:     2,
}

// categoryWeights blend the six category scores into the overall score. They
// must sum to 1.0; error handling and security dominate deliberately.
var categoryWeights = map[models.Category]float64{
	models.CategoryNaming:          0.10,
	models.CategoryErrorHandling:   0.30,
	models.CategoryPerformance:     0.20,
	models.CategorySecurity:        0.25,
	models.CategoryMaintainability: 0.10,
	models.CategoryStandards:       0.05,
}

// scoreCategories starts every built-in category at 100 and subtracts per
// finding by severity, flooring at 0. Custom findings do not carry a category
// score.
func scoreCategories(findings []models.Finding) map[models.Category]int {
	scores := make(map[models.Category]int, len(models.ReviewCategories))

	for _, category := range models.ReviewCategories {
		deductions := 0

		for _, finding := range findings {
			if finding.Category != category {
				continue
			}

			deductions += severityDeductions[finding.Severity]
		}

		if deductions > 100 {
			deductions = 100
		}

		scores[category] = 100 - deductions
	}

	return scores
}

// overallScore is the fixed weighted sum of the category scores, rounded to
// one decimal place.
func overallScore(categoryScores map[models.Category]int) float64 {
	total := 0.0
	for category, weight := range categoryWeights {
		total += float64(categoryScores[category]) * weight
	}

	return math.Round(total*10) / 10
}

func gradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func countSeverities(findings []models.Finding) models.SeverityCounts {
	counts := models.SeverityCounts{Total: len(findings)}

	for _, finding := range findings {
		switch finding.Severity {
		case models.SeverityCritical:
			counts.Critical++
		case models.SeverityMajor:
			counts.Major++
		case models.SeverityMinor:
			counts.Minor++
		case models.SeverityInfo:
			counts.Info++
		}
	}

	return counts
}
