package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"go.opentelemetry.io/otel/trace"

	"github.com/botlens/botlens/pkg/analysis"
	"github.com/botlens/botlens/pkg/config"
	"github.com/botlens/botlens/pkg/log"
	"github.com/botlens/botlens/pkg/mappings"
	"github.com/botlens/botlens/pkg/models"
	"github.com/botlens/botlens/pkg/otelhelper"
	"github.com/botlens/botlens/pkg/review"
)

var ErrMissingFile = errors.New("a workflow definition file argument is required")

func NewAnalyzeCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"a"},
		Usage:     "Analyze one exported workflow definition file",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "platform",
				Aliases: []string{"p"},
				Usage:   "Platform dialect (UiPath, Blue Prism); detected from the file extension when omitted",
				Value:   "",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Workflow display name (defaults to the file name without extension)",
				Value: "",
			},
			&cli.StringFlag{
				Name:  "custom-rules",
				Usage: "Path to a JSON file of user-defined rules to evaluate",
				Value: "",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "Emit OpenTelemetry spans for the analysis stages",
				Value: false,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			return runAnalyze(ctx, command, cfg)
		},
	}
}

func runAnalyze(ctx context.Context, command *cli.Command, cfg *config.Config) error {
	logger := log.WithModule("analyze")

	filePath := command.Args().First()
	if filePath == "" {
		return ErrMissingFile
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read workflow file: %w", err)
	}

	platform := models.Platform(command.String("platform"))
	if platform == "" && cfg.DefaultPlatform != "" {
		platform = models.Platform(cfg.DefaultPlatform)
	}

	if platform == "" {
		platform = models.DetectPlatform(filePath)
		logger.Debug("platform detected from extension", "platform", platform)
	}

	name := command.String("name")
	if name == "" {
		base := filepath.Base(filePath)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	rulesPath := command.String("custom-rules")
	if rulesPath == "" {
		rulesPath = cfg.CustomRulesFile
	}

	var customRules []models.CustomRule

	if rulesPath != "" {
		customRules, err = review.LoadRulesFile(rulesPath)
		if err != nil {
			return err
		}

		logger.Info("loaded custom rules", "count", len(customRules))
	}

	kb, err := loadKnowledgeBase(cfg)
	if err != nil {
		return err
	}

	var tracer trace.Tracer

	if command.Bool("trace") || cfg.Tracing.Enabled {
		tracer, err = otelhelper.NewTracer(ctx, cfg.Tracing.ServiceName)
		if err != nil {
			return fmt.Errorf("initialize tracer: %w", err)
		}
	}

	analyzer := analysis.NewAnalyzer(logger, kb, tracer)

	report, err := analyzer.Analyze(ctx, analysis.Request{
		WorkflowName: name,
		Platform:     platform,
		Raw:          raw,
		CustomRules:  customRules,
	})
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(report)
}

// loadKnowledgeBase prefers a file-based mapping table over the embedded one
// so teams can version their own.
func loadKnowledgeBase(cfg *config.Config) (*mappings.KnowledgeBase, error) {
	if cfg.KnowledgeBaseFile == "" {
		kb, err := mappings.Load()
		if err != nil {
			return nil, fmt.Errorf("load knowledge base: %w", err)
		}

		return kb, nil
	}

	raw, err := os.ReadFile(cfg.KnowledgeBaseFile)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base file: %w", err)
	}

	kb, err := mappings.LoadFrom(raw)
	if err != nil {
		return nil, fmt.Errorf("load knowledge base: %w", err)
	}

	return kb, nil
}
