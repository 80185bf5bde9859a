package metrics

import "github.com/botlens/botlens/pkg/models"

// Weights control the complexity formula. The defaults are load-bearing:
// stored complexity thresholds in downstream systems assume them, so callers
// overriding weights own the recalibration.
type Weights struct {
	Activity     int
	NestingDepth int
	Variable     int
	InvokedFlow  int
	CustomCode   int
}

// DefaultWeights penalizes nesting and invocation fan-out more than raw
// activity count.
func DefaultWeights() Weights {
	return Weights{
		Activity:     1,
		NestingDepth: 3,
		Variable:     1,
		InvokedFlow:  2,
		CustomCode:   5,
	}
}

// Score computes the complexity score with the default weights.
func Score(m models.DeterministicMetrics) models.ComplexityScore {
	return ScoreWith(m, DefaultWeights())
}

// ScoreWith computes the complexity score with explicit weights.
func ScoreWith(m models.DeterministicMetrics, w Weights) models.ComplexityScore {
	score := m.ActivityCount*w.Activity +
		m.NestingDepth*w.NestingDepth +
		m.VariableCount*w.Variable +
		m.InvokedWorkflowCount*w.InvokedFlow

	if m.HasCustomCode {
		score += w.CustomCode
	}

	return models.ComplexityScore{
		Score: score,
		Level: levelFor(score),
	}
}

// levelFor buckets a score into the fixed tiers. The cut points are shared
// with stored reports and must not drift.
func levelFor(score int) models.ComplexityLevel {
	switch {
	case score < 20:
		return models.ComplexityLow
	case score < 50:
		return models.ComplexityMedium
	case score < 100:
		return models.ComplexityHigh
	default:
		return models.ComplexityVeryHigh
	}
}
