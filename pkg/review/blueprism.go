package review

import (
	"fmt"
	"strings"

	"github.com/botlens/botlens/pkg/models"
)

func bluePrismRules() []Rule {
	return []Rule{
		{
			ID:          "BP-NAM-001",
			Name:        "Process Naming Convention",
			Category:    models.CategoryNaming,
			Severity:    models.SeverityMinor,
			Platform:    models.PlatformBluePrism,
			Description: "Process names should follow Blue Prism naming standards",
			Check:       checkBPProcessNaming,
		},
		{
			ID:          "BP-NAM-002",
			Name:        "Data Item Naming",
			Category:    models.CategoryNaming,
			Severity:    models.SeverityMinor,
			Platform:    models.PlatformBluePrism,
			Description: "Data items should use meaningful names",
			Check:       checkBPDataItemNaming,
		},
		{
			ID:          "BP-ERR-001",
			Name:        "Missing Exception Handling",
			Category:    models.CategoryErrorHandling,
			Severity:    models.SeverityCritical,
			Platform:    models.PlatformBluePrism,
			Description: "Processes should have exception stages",
			Check:       checkBPMissingExceptionHandling,
		},
		{
			ID:          "BP-SEC-001",
			Name:        "Credential Management",
			Category:    models.CategorySecurity,
			Severity:    models.SeverityCritical,
			Platform:    models.PlatformBluePrism,
			Description: "Use Credential Manager for sensitive data",
			Check:       checkBPCredentialManagement,
		},
	}
}

func checkBPProcessNaming(workflow models.WorkflowSnapshot, _ []models.Activity) []models.Finding {
	name := workflow.Name
	if name == "" || len(name) >= 5 {
		return nil
	}

	return []models.Finding{{
		Category:       models.CategoryNaming,
		Severity:       models.SeverityMinor,
		RuleID:         "BP-NAM-001",
		RuleName:       "Process Naming Convention",
		Message:        fmt.Sprintf("Process name %q is too short", name),
		Description:    "Process names should be descriptive and indicate business purpose",
		Recommendation: `Use a descriptive name like "Process - Invoice Validation" or "Utility - Data Extraction"`,
		ActivityName:   name,
		Impact:         "Maintainability",
		Effort:         "Low",
	}}
}

func checkBPDataItemNaming(workflow models.WorkflowSnapshot, _ []models.Activity) []models.Finding {
	var findings []models.Finding

	genericNames := map[string]struct{}{
		"data": {}, "temp": {}, "var": {}, "x": {}, "y": {}, "z": {},
	}

	for _, variable := range workflow.Variables {
		if _, generic := genericNames[strings.ToLower(variable.Name)]; !generic {
			continue
		}

		findings = append(findings, models.Finding{
			Category:       models.CategoryNaming,
			Severity:       models.SeverityMinor,
			RuleID:         "BP-NAM-002",
			RuleName:       "Data Item Naming",
			Message:        fmt.Sprintf("Data item %q has a generic name", variable.Name),
			Description:    "Data items should have descriptive names that indicate their purpose",
			Recommendation: `Use meaningful names like "Customer Name", "Invoice Total", or "Transaction ID"`,
			ActivityName:   variable.Name,
			Impact:         "Maintainability",
			Effort:         "Low",
		})
	}

	return findings
}

func checkBPMissingExceptionHandling(_ models.WorkflowSnapshot, activities []models.Activity) []models.Finding {
	hasExceptionHandling := anyActivity(activities, func(typeLower, displayLower string) bool {
		return strings.Contains(typeLower, "exception") ||
			strings.Contains(displayLower, "exception") ||
			strings.Contains(displayLower, "error")
	})

	if hasExceptionHandling || len(activities) <= 5 {
		return nil
	}

	return []models.Finding{{
		Category:       models.CategoryErrorHandling,
		Severity:       models.SeverityCritical,
		RuleID:         "BP-ERR-001",
		RuleName:       "Missing Exception Handling",
		Message:        "Process lacks exception handling stages",
		Description:    "All Blue Prism processes should have exception handling blocks for robustness",
		Recommendation: "Add Exception stages with Recover/Resume paths. Include error logging and notification mechanisms",
		Impact:         "Critical - Unhandled exceptions cause process failures",
		Effort:         "Medium",
	}}
}

func checkBPCredentialManagement(workflow models.WorkflowSnapshot, _ []models.Activity) []models.Finding {
	var findings []models.Finding

	patterns := []string{"password", "pwd", "credential", "secret", "apikey"}

	for _, variable := range workflow.Variables {
		nameLower := strings.ToLower(variable.Name)

		for _, pattern := range patterns {
			if !strings.Contains(nameLower, pattern) {
				continue
			}

			findings = append(findings, models.Finding{
				Category:       models.CategorySecurity,
				Severity:       models.SeverityCritical,
				RuleID:         "BP-SEC-001",
				RuleName:       "Credential Management",
				Message:        fmt.Sprintf("Potential credential data item detected: %q", variable.Name),
				Description:    "Credentials should be stored in Blue Prism Credential Manager, not as plain data items",
				Recommendation: "Use Get Credential action from Credential Manager. Never store credentials as plain text data items",
				ActivityName:   variable.Name,
				Impact:         "Security - Credential exposure",
				Effort:         "Low",
			})

			break
		}
	}

	return findings
}
