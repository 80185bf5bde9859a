package parser

import "github.com/botlens/botlens/pkg/models"

// parseGeneric is the fallback for unknown dialects: every element becomes an
// activity and anything carrying a name-like attribute becomes a variable.
func parseGeneric(doc *document, platform models.Platform) *models.ParsedWorkflow {
	workflow := &models.ParsedWorkflow{
		Platform:   platform,
		Activities: []models.Activity{},
		Variables:  []models.Variable{},
		Raw:        doc,
	}

	doc.walk(func(node *Node) {
		if depth := node.Ancestors(); depth > workflow.NestingDepth {
			workflow.NestingDepth = depth
		}

		name := node.Attr("Name")
		if name == "" {
			name = node.Attr("name")
		}

		if name != "" {
			workflow.Variables = append(workflow.Variables, models.Variable{Name: name})
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
