// Package parser turns raw workflow definition exports into a normalized
// activity and variable model. Parsing is tolerant: malformed markup is
// recovered as far as possible and only a document with no readable structure
// at all fails.
package parser

import (
	"bytes"
	"log/slog"

	"github.com/botlens/botlens/pkg/models"
)

// Parser reads workflow definition documents for one of the supported
// dialects. The zero value is not usable; construct with NewParser.
type Parser struct {
	logger *slog.Logger
}

func NewParser(logger *slog.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// Parse reads one exported workflow definition. It fails only when the input
// is empty or no structural content can be recovered at all; every other
// malformation degrades to a best-effort result with a logged warning.
func (p *Parser) Parse(raw []byte, platform models.Platform) (*models.ParsedWorkflow, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, &ParseError{Op: "Parse", Platform: string(platform), Err: ErrEmptyDocument}
	}

	doc, err := readTree(raw)
	if err != nil {
		return nil, &ParseError{Op: "Parse", Platform: string(platform), Err: err}
	}

	if doc.warnings > 0 {
		p.logger.Warn("recovered from malformed markup",
			"platform", platform,
			"discarded_nodes", doc.warnings,
		)
	}

	var workflow *models.ParsedWorkflow

	switch platform {
	case models.PlatformUiPath:
		workflow = parseUiPath(doc)
	case models.PlatformBluePrism:
		workflow = parseBluePrism(doc)
	default:
		workflow = parseGeneric(doc, platform)
	}

	p.logger.Info("parsed workflow",
		"platform", platform,
		"activities", len(workflow.Activities),
		"variables", len(workflow.Variables),
		"nesting_depth", workflow.NestingDepth,
	)

	return workflow, nil
}
