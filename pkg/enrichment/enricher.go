// Package enrichment defines the boundary for optional, non-deterministic
// report augmentation (AI-generated narrative). Enrichment is a fallible,
// retryable, timeout-bounded task that runs after the deterministic report is
// complete; its failure never alters or blocks that report.
package enrichment

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/botlens/botlens/pkg/analysis"
	"github.com/botlens/botlens/pkg/models"
)

// Enricher produces a narrative overlay for a finished report. Implementations
// are expected to be network-bound and unreliable.
type Enricher interface {
	Enrich(ctx context.Context, report *analysis.Report) (*models.Narrative, error)
}

// Options bound one enrichment attempt batch.
type Options struct {
	Timeout     time.Duration
	MaxRetries  uint64
	InitialWait time.Duration
}

func DefaultOptions() Options {
	return Options{
		Timeout:     30 * time.Second,
		MaxRetries:  3,
		InitialWait: time.Second,
	}
}

// Apply runs the enricher with retry and timeout and, on success, attaches
// the narrative to the report. Every failure path leaves the report exactly
// as it was and returns nil: enrichment is best-effort by contract.
func Apply(ctx context.Context, logger *slog.Logger, enricher Enricher, report *analysis.Report, opts Options) {
	if enricher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = opts.InitialWait

	var narrative *models.Narrative

	operation := func() error {
		result, err := enricher.Enrich(ctx, report)
		if err != nil {
			return err
		}

		narrative = result

		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(policy, opts.MaxRetries),
		ctx,
	))
	if err != nil {
		logger.Warn("enrichment failed, keeping deterministic report as-is",
			"report_id", report.ID,
			"error", err,
		)

		return
	}

	report.Narrative = narrative
}
