package mappings

import (
	"math"

	"github.com/botlens/botlens/pkg/models"
)

// DefaultIncompatibleEffort is the fixed penalty, in hours, for an activity
// the knowledge base has no row for. Activities the table explicitly
// classifies incompatible keep their tabulated estimate instead.
const DefaultIncompatibleEffort = 8.0

// Compatibility weights per mapping class for the 0-100 score.
const (
	directWeight  = 100
	partialWeight = 70
	complexWeight = 40
)

// Estimator walks activity sequences against a knowledge base to produce
// migration statistics.
type Estimator struct {
	kb *KnowledgeBase
}

func NewEstimator(kb *KnowledgeBase) *Estimator {
	return &Estimator{kb: kb}
}

// Estimate classifies every activity's portability and sums effort hours.
// An empty activity list yields a compatibility score of 0 by convention.
func (e *Estimator) Estimate(activities []models.Activity) models.MigrationStats {
	stats := models.MigrationStats{
		TotalActivities: len(activities),
		Breakdown:       make([]models.ActivityPortability, 0, len(activities)),
	}

	for _, activity := range activities {
		portability := e.classify(activity.Type)
		stats.Breakdown = append(stats.Breakdown, portability)

		switch portability.MappingType {
		case models.MappingDirect:
			stats.DirectMappings++
			stats.TotalEffortHours += portability.Mapping.EffortEstimate
		case models.MappingPartial:
			stats.PartialMappings++
			stats.TotalEffortHours += portability.Mapping.EffortEstimate
		case models.MappingComplex:
			stats.ComplexMappings++
			stats.TotalEffortHours += portability.Mapping.EffortEstimate
		case models.MappingIncompatible:
			stats.IncompatibleMappings++

			if portability.Mapping != nil {
				stats.TotalEffortHours += portability.Mapping.EffortEstimate
			} else {
				stats.TotalEffortHours += DefaultIncompatibleEffort
			}
		}
	}

	if stats.TotalActivities > 0 {
		score := float64(
			stats.DirectMappings*directWeight+
				stats.PartialMappings*partialWeight+
				stats.ComplexMappings*complexWeight,
		) / float64(stats.TotalActivities)
		stats.CompatibilityScore = int(math.Round(score))
	}

	return stats
}

// classify resolves one activity: the best available mapping class wins
// (direct over partial over complex); a lookup miss or an all-incompatible
// row set classifies as incompatible.
func (e *Estimator) classify(activityType string) models.ActivityPortability {
	portability := models.ActivityPortability{
		SourceActivity: activityType,
		MappingType:    models.MappingIncompatible,
		Category:       e.kb.Categorize(activityType),
	}

	entries, found := e.kb.Lookup(activityType)
	if !found || len(entries) == 0 {
		return portability
	}

	best := -1

	for i, entry := range entries {
		if best == -1 || rank(entry.MappingType) < rank(entries[best].MappingType) {
			best = i
		}
	}

	portability.Mapping = &entries[best]
	portability.MappingType = entries[best].MappingType

	return portability
}

func rank(mappingType models.MappingType) int {
	switch mappingType {
	case models.MappingDirect:
		return 0
	case models.MappingPartial:
		return 1
	case models.MappingComplex:
		return 2
	default:
		return 3
	}
}
