package parser

import (
	"strings"

	"github.com/botlens/botlens/pkg/models"
)

// Noise filtering for the UiPath dialect. These sets are heuristic and
// tool-version dependent; they are kept as plain data so false
// classifications are easy to audit against real exports.
// TODO: recalibrate the ignore sets against Studio 2023+ exports, which add
// new ViewState wrapper elements.
var (
	// UiPathIgnoredTags are infrastructure and metadata elements that are
	// never activities, matched by namespace-stripped name.
	UiPathIgnoredTags = map[string]struct{}{
		"AssemblyReference":                          {},
		"TextExpression.NamespacesForImplementation": {},
		"TextExpression.ReferencesForImplementation": {},
		"WorkflowViewStateService.ViewState":         {},
		"WorkflowViewState.IdRef":                    {},
		"VisualBasic.Settings":                       {},
		"String":                                     {},
		"Boolean":                                    {},
		"Dictionary":                                 {},
		"Collection":                                 {},
	}

	// UiPathIgnoredPrefixes and UiPathIgnoredSuffixes extend the ignore
	// set to metadata naming patterns that vary per tool version.
	UiPathIgnoredPrefixes = []string{"TextExpression"}
	UiPathIgnoredSuffixes = []string{"Reference", "ViewState"}

	// UiPathContainerTags are pure structural containers: walked for
	// children and counted toward depth, but not emitted as activities.
	UiPathContainerTags = map[string]struct{}{
		"Sequence":  {},
		"Flowchart": {},
	}
)

func uiPathIgnored(local string) bool {
	if _, ok := UiPathIgnoredTags[local]; ok {
		return true
	}

	for _, prefix := range UiPathIgnoredPrefixes {
		if strings.HasPrefix(local, prefix) {
			return true
		}
	}

	for _, suffix := range UiPathIgnoredSuffixes {
		if strings.HasSuffix(local, suffix) {
			return true
		}
	}

	return false
}

// parseUiPath walks every node in document order, dropping infrastructure
// noise, recording Name-attributed nodes as variables and everything else
// (minus pure containers) as activities. Depth considers retained nodes only.
func parseUiPath(doc *document) *models.ParsedWorkflow {
	workflow := &models.ParsedWorkflow{
		Platform:   models.PlatformUiPath,
		Activities: []models.Activity{},
		Variables:  []models.Variable{},
		Raw:        doc,
	}

	doc.walk(func(node *Node) {
		if uiPathIgnored(node.Local) {
			return
		}

		if name := node.Attr("Name"); name != "" {
			workflow.Variables = append(workflow.Variables, models.Variable{
				Name:         name,
				DefaultValue: node.Attr("Default"),
				DataType:     node.Attr("TypeArguments"),
			})
		}

		if depth := node.Ancestors(); depth > workflow.NestingDepth {
			workflow.NestingDepth = depth
		}

		if _, container := UiPathContainerTags[node.Local]; container {
			return
		}

		display := node.Attr("DisplayName")
		if display == "" {
			display = node.Local
		}

		workflow.Activities = append(workflow.Activities, models.Activity{
			Type:        node.Local,
			DisplayName: display,
		})
	})

	return workflow
}
