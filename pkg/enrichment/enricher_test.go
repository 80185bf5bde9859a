package enrichment

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botlens/botlens/pkg/analysis"
	"github.com/botlens/botlens/pkg/models"
)

type stubEnricher struct {
	narrative *models.Narrative
	err       error
	failures  int
	calls     int
}

func (s *stubEnricher) Enrich(_ context.Context, _ *analysis.Report) (*models.Narrative, error) {
	s.calls++

	if s.failures >= s.calls {
		return nil, errors.New("model endpoint unavailable")
	}

	if s.err != nil {
		return nil, s.err
	}

	return s.narrative, nil
}

func testOptions() Options {
	return Options{
		Timeout:     time.Second,
		MaxRetries:  2,
		InitialWait: time.Millisecond,
	}
}

func TestApply_SuccessAttachesNarrative(t *testing.T) {
	report := &analysis.Report{ID: "report-1", WorkflowName: "InvoiceBot"}
	enricher := &stubEnricher{
		narrative: &models.Narrative{
			Summary: "Automates invoice entry with manual login handling.",
			Model:   "test-model",
		},
	}

	Apply(context.Background(), slog.Default(), enricher, report, testOptions())

	require.NotNil(t, report.Narrative)
	assert.Equal(t, "test-model", report.Narrative.Model)
	assert.Equal(t, 1, enricher.calls)
}

func TestApply_RetriesTransientFailures(t *testing.T) {
	report := &analysis.Report{ID: "report-2"}
	enricher := &stubEnricher{
		narrative: &models.Narrative{Summary: "ok"},
		failures:  2,
	}

	Apply(context.Background(), slog.Default(), enricher, report, testOptions())

	require.NotNil(t, report.Narrative)
	assert.Equal(t, 3, enricher.calls)
}

func TestApply_ExhaustedRetriesLeaveReportUntouched(t *testing.T) {
	report := &analysis.Report{ID: "report-3"}
	enricher := &stubEnricher{err: errors.New("always failing")}
	enricher.failures = 100

	Apply(context.Background(), slog.Default(), enricher, report, testOptions())

	assert.Nil(t, report.Narrative)
	assert.Equal(t, 3, enricher.calls)
}

func TestApply_NilEnricherIsNoOp(t *testing.T) {
	report := &analysis.Report{ID: "report-4"}

	Apply(context.Background(), slog.Default(), nil, report, testOptions())

	assert.Nil(t, report.Narrative)
}

func TestApply_CancelledContextStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := &analysis.Report{ID: "report-5"}
	enricher := &stubEnricher{failures: 100}

	Apply(ctx, slog.Default(), enricher, report, testOptions())

	assert.Nil(t, report.Narrative)
	assert.LessOrEqual(t, enricher.calls, 1)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, 30*time.Second, opts.Timeout)
	assert.Equal(t, uint64(3), opts.MaxRetries)
	assert.Equal(t, time.Second, opts.InitialWait)
}
