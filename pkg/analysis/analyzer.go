// Package analysis wires the parser, metrics, review and migration
// components into one deterministic analysis pipeline. The pipeline is pure
// computation per call: no I/O, no shared mutable state, safe to run
// concurrently against one shared knowledge base.
package analysis

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/botlens/botlens/pkg/mappings"
	"github.com/botlens/botlens/pkg/metrics"
	"github.com/botlens/botlens/pkg/models"
	"github.com/botlens/botlens/pkg/otelhelper"
	"github.com/botlens/botlens/pkg/parser"
	"github.com/botlens/botlens/pkg/review"
)

// Analyzer runs the full analysis pipeline over one uploaded workflow
// definition. Construct once and share: every dependency is read-only after
// construction.
type Analyzer struct {
	logger    *slog.Logger
	tracer    trace.Tracer
	parser    *parser.Parser
	engine    *review.Engine
	estimator *mappings.Estimator
}

// NewAnalyzer builds an analyzer over the given knowledge base. The tracer is
// optional; pass nil to disable span emission.
func NewAnalyzer(logger *slog.Logger, kb *mappings.KnowledgeBase, tracer trace.Tracer) *Analyzer {
	return &Analyzer{
		logger:    logger,
		tracer:    tracer,
		parser:    parser.NewParser(logger),
		engine:    review.NewEngine(logger, review.NewRegistry(logger)),
		estimator: mappings.NewEstimator(kb),
	}
}

// Request carries one analysis invocation: the raw definition bytes, the
// externally-derived platform tag, a display name for the workflow, and the
// caller's active custom rules.
type Request struct {
	WorkflowName string
	Platform     models.Platform
	Raw          []byte
	CustomRules  []models.CustomRule
}

// Analyze produces the deterministic report for one workflow definition.
// Only an unreadable document fails; every downstream anomaly degrades to
// conservative defaults inside its component.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Report, error) {
	ctx, span := a.startSpan(ctx, "analysis.run",
		attribute.String(otelhelper.PlatformKey, string(req.Platform)),
		attribute.String(otelhelper.WorkflowNameKey, req.WorkflowName),
	)
	defer span.End()

	workflow, err := a.parseStage(ctx, req)
	if err != nil {
		otelhelper.SetError(span, err)

		return nil, err
	}

	span.SetAttributes(attribute.Int(otelhelper.ActivityCountKey, len(workflow.Activities)))

	deterministic := metrics.Extract(workflow)
	complexity := metrics.Score(deterministic)

	reviewResult := a.reviewStage(ctx, req, workflow)
	migration := a.migrationStage(ctx, workflow)

	report := &Report{
		ID:           uuid.New().String(),
		WorkflowName: req.WorkflowName,
		Platform:     workflow.Platform,
		Workflow:     workflow,
		Metrics:      deterministic,
		Complexity:   complexity,
		Review:       reviewResult,
		Migration:    migration,
	}
	report.stamp()

	a.logger.Info("analysis complete",
		"report_id", report.ID,
		"platform", report.Platform,
		"complexity_level", complexity.Level,
		"review_grade", reviewResult.Grade,
		"compatibility_score", migration.CompatibilityScore,
	)

	return report, nil
}

func (a *Analyzer) parseStage(ctx context.Context, req Request) (*models.ParsedWorkflow, error) {
	_, span := a.startSpan(ctx, "analysis.parse",
		attribute.String(otelhelper.StageKey, "parse"),
	)
	defer span.End()

	return a.parser.Parse(req.Raw, req.Platform)
}

func (a *Analyzer) reviewStage(ctx context.Context, req Request, workflow *models.ParsedWorkflow) models.ReviewResult {
	_, span := a.startSpan(ctx, "analysis.review",
		attribute.String(otelhelper.StageKey, "review"),
	)
	defer span.End()

	snapshot := workflow.Snapshot(req.WorkflowName)

	return a.engine.Review(workflow.Platform, snapshot, workflow.Activities, req.CustomRules)
}

func (a *Analyzer) migrationStage(ctx context.Context, workflow *models.ParsedWorkflow) models.MigrationStats {
	_, span := a.startSpan(ctx, "analysis.migration",
		attribute.String(otelhelper.StageKey, "migration"),
	)
	defer span.End()

	return a.estimator.Estimate(workflow.Activities)
}

// startSpan is a no-op when tracing is disabled.
func (a *Analyzer) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if a.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}

	return otelhelper.StartSpan(ctx, a.tracer, name, attrs...)
}
