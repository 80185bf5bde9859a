package parser

import "github.com/botlens/botlens/pkg/models"

// parseBluePrism extracts stages and actions as activities and variable
// elements as data items. Blue Prism exports use lowercase element names and
// a lowercase name attribute.
func parseBluePrism(doc *document) *models.ParsedWorkflow {
	workflow := &models.ParsedWorkflow{
		Platform:   models.PlatformBluePrism,
		Activities: []models.Activity{},
		Variables:  []models.Variable{},
		Raw:        doc,
	}

	doc.walk(func(node *Node) {
		if depth := node.Ancestors(); depth > workflow.NestingDepth {
			workflow.NestingDepth = depth
		}

		switch node.Local {
		case "stage", "action":
			name := node.Attr("name")
			if name == "" {
				name = node.Local
			}

			workflow.Activities = append(workflow.Activities, models.Activity{
				Type:        name,
				DisplayName: name,
			})
		case "variable":
			if name := node.Attr("name"); name != "" {
				workflow.Variables = append(workflow.Variables, models.Variable{
					Name:         name,
					DefaultValue: node.Attr("value"),
					DataType:     node.Attr("datatype"),
				})
			}
		}
	})

	return workflow
}
