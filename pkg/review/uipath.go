package review

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/botlens/botlens/pkg/models"
)

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

func anyActivity(activities []models.Activity, match func(typeLower, displayLower string) bool) bool {
	for _, activity := range activities {
		if match(strings.ToLower(activity.Type), strings.ToLower(activity.DisplayName)) {
			return true
		}
	}

	return false
}

// credentialPatterns flag variable names that look like secrets.
var credentialPatterns = []string{"password", "pwd", "pass", "credential", "secret", "apikey", "api_key", "token"}

func uiPathRules() []Rule {
	return []Rule{
		{
			ID:          "UP-NAM-001",
			Name:        "Workflow Naming Convention",
			Category:    models.CategoryNaming,
			Severity:    models.SeverityMinor,
			Platform:    models.PlatformUiPath,
			Description: "Workflow names should use PascalCase and be descriptive",
			Check:       checkWorkflowNaming,
		},
		{
			ID:          "UP-NAM-002",
			Name:        "Variable Naming Convention",
			Category:    models.CategoryNaming,
			Severity:    models.SeverityMinor,
			Platform:    models.PlatformUiPath,
			Description: "Variables should use camelCase with descriptive names",
			Check:       checkVariableNaming,
		},
		{
			ID:          "UP-ERR-001",
			Name:        "Missing Try-Catch Blocks",
			Category:    models.CategoryErrorHandling,
			Severity:    models.SeverityCritical,
			Platform:    models.PlatformUiPath,
			Description: "Workflows should have proper error handling with Try-Catch blocks",
			Check:       checkMissingTryCatch,
		},
		{
			ID:          "UP-ERR-002",
			Name:        "Empty Catch Blocks",
			Category:    models.CategoryErrorHandling,
			Severity:    models.SeverityMajor,
			Platform:    models.PlatformUiPath,
			Description: "Catch blocks should not be empty and should log errors",
			Check:       checkEmptyCatchBlocks,
		},
		{
			ID:          "UP-ERR-003",
			Name:        "No Retry Logic for Transient Failures",
			Category:    models.CategoryErrorHandling,
			Severity:    models.SeverityMajor,
			Platform:    models.PlatformUiPath,
			Description: "API calls and network operations should have retry logic",
			Check:       checkRetryLogic,
		},
		{
			ID:          "UP-PERF-001",
			Name:        "Excessive Nesting Depth",
			Category:    models.CategoryPerformance,
			Severity:    models.SeverityMajor,
			Platform:    models.PlatformUiPath,
			Description: "Deep nesting can impact performance and readability",
			Check:       checkExcessiveNesting,
		},
		{
			ID:          "UP-PERF-002",
			Name:        "Large Workflow - Consider Modularization",
			Category:    models.CategoryPerformance,
			Severity:    models.SeverityMinor,
			Platform:    models.PlatformUiPath,
			Description: "Large workflows should be split into smaller, reusable components",
			Check:       checkLargeWorkflow,
		},
		{
			ID:          "UP-PERF-003",
			Name:        "Selector Optimization",
			Category:    models.CategoryPerformance,
			Severity:    models.SeverityMinor,
			Platform:    models.PlatformUiPath,
			Description: "UI selectors should be optimized for performance",
			Check:       checkSelectorOptimization,
		},
		{
			ID:          "UP-SEC-001",
			Name:        "Hardcoded Credentials",
			Category:    models.CategorySecurity,
			Severity:    models.SeverityCritical,
			Platform:    models.PlatformUiPath,
			Description: "Credentials should not be hardcoded in workflows",
			Check:       checkHardcodedCredentials,
		},
		{
			ID:          "UP-SEC-002",
			Name:        "Sensitive Data Logging",
			Category:    models.CategorySecurity,
			Severity:    models.SeverityMajor,
			Platform:    models.PlatformUiPath,
			Description: "Ensure sensitive data is not logged",
			Check:       checkSensitiveDataLogging,
		},
		{
			ID:          "UP-MAINT-001",
			Name:        "Missing Annotations",
			Category:    models.CategoryMaintainability,
			Severity:    models.SeverityMinor,
			Platform:    models.PlatformUiPath,
			Description: "Complex workflows should have annotations explaining logic",
			Check:       checkMissingAnnotations,
		},
		{
			ID:          "UP-STD-001",
			Name:        "Logging Standards",
			Category:    models.CategoryStandards,
			Severity:    models.SeverityMinor,
			Platform:    models.PlatformUiPath,
			Description: "Workflows should follow logging best practices",
			Check:       checkLoggingStandards,
		},
	}
}

func checkWorkflowNaming(workflow models.WorkflowSnapshot, _ []models.Activity) []models.Finding {
	var findings []models.Finding

	name := workflow.Name

	if name != "" && !(unicode.IsUpper([]rune(name)[0]) && isAlphanumeric(strings.ReplaceAll(name, "_", ""))) {
		findings = append(findings, models.Finding{
			Category:       models.CategoryNaming,
			Severity:       models.SeverityMinor,
			RuleID:         "UP-NAM-001",
			RuleName:       "Workflow Naming Convention",
			Message:        fmt.Sprintf("Workflow name %q does not follow PascalCase convention", name),
			Description:    "Workflow names should use PascalCase (e.g., ProcessInvoice, ValidateData) for consistency and readability",
			Recommendation: `Rename workflow to use PascalCase. Example: "process_invoice" -> "ProcessInvoice"`,
			ActivityName:   name,
			Impact:         "Maintainability",
			Effort:         "Low",
		})
	}

	genericNames := []string{"workflow", "process", "main", "sequence", "test"}
	lower := strings.ToLower(name)

	for _, generic := range genericNames {
		if strings.Contains(lower, generic) && len(name) < 15 {
			findings = append(findings, models.Finding{
				Category:       models.CategoryNaming,
				Severity:       models.SeverityMinor,
				RuleID:         "UP-NAM-001",
				RuleName:       "Workflow Naming Convention",
				Message:        fmt.Sprintf("Workflow name %q is too generic", name),
				Description:    "Workflow names should be descriptive and indicate the business purpose",
				Recommendation: "Use a more specific name that describes what the workflow does (e.g., ExtractInvoiceData, ValidateCustomerInfo)",
				ActivityName:   name,
				Impact:         "Maintainability",
				Effort:         "Low",
			})

			break
		}
	}

	return findings
}

func checkVariableNaming(workflow models.WorkflowSnapshot, _ []models.Activity) []models.Finding {
	var findings []models.Finding

	for _, variable := range workflow.Variables {
		name := variable.Name
		if name == "" {
			continue
		}

		if !(unicode.IsLower([]rune(name)[0]) && isAlphanumeric(strings.ReplaceAll(name, "_", ""))) {
			findings = append(findings, models.Finding{
				Category:       models.CategoryNaming,
				Severity:       models.SeverityMinor,
				RuleID:         "UP-NAM-002",
				RuleName:       "Variable Naming Convention",
				Message:        fmt.Sprintf("Variable %q does not follow camelCase convention", name),
				Description:    "Variables should use camelCase (e.g., invoiceNumber, customerData) for consistency",
				Recommendation: `Rename variable to use camelCase. Example: "Invoice_Number" -> "invoiceNumber"`,
				ActivityName:   name,
				Impact:         "Maintainability",
				Effort:         "Low",
			})
		}

		short := len(name) == 1 ||
			(len(name) == 2 && strings.ToLower(name) != "dt" && strings.ToLower(name) != "id")
		if short {
			findings = append(findings, models.Finding{
				Category:       models.CategoryNaming,
				Severity:       models.SeverityMinor,
				RuleID:         "UP-NAM-002",
				RuleName:       "Variable Naming Convention",
				Message:        fmt.Sprintf("Variable %q is too short and not descriptive", name),
				Description:    "Variable names should be descriptive enough to understand their purpose",
				Recommendation: `Use a more descriptive name (e.g., "i" -> "index", "x" -> "customerName")`,
				ActivityName:   name,
				Impact:         "Maintainability",
				Effort:         "Low",
			})
		}
	}

	return findings
}

func checkMissingTryCatch(_ models.WorkflowSnapshot, activities []models.Activity) []models.Finding {
	hasTryCatch := anyActivity(activities, func(typeLower, displayLower string) bool {
		return strings.Contains(typeLower, "trycatch") || strings.Contains(displayLower, "try catch")
	})

	if hasTryCatch || len(activities) <= 5 {
		return nil
	}

	return []models.Finding{{
		Category:       models.CategoryErrorHandling,
		Severity:       models.SeverityCritical,
		RuleID:         "UP-ERR-001",
		RuleName:       "Missing Try-Catch Blocks",
		Message:        "Workflow lacks error handling mechanisms",
		Description:    fmt.Sprintf("This workflow has %d activities but no Try-Catch blocks for error handling", len(activities)),
		Recommendation: "Wrap critical operations in Try-Catch blocks. Add global error handler at workflow level and specific handlers for risky operations (API calls, file operations, database queries)",
		Impact:         "Critical - Production failures without proper error handling",
		Effort:         "Medium",
	}}
}

func checkEmptyCatchBlocks(_ models.WorkflowSnapshot, activities []models.Activity) []models.Finding {
	hasTryCatch := anyActivity(activities, func(typeLower, _ string) bool {
		return strings.Contains(typeLower, "trycatch")
	})

	if !hasTryCatch {
		return nil
	}

	return []models.Finding{{
		Category:       models.CategoryErrorHandling,
		Severity:       models.SeverityInfo,
		RuleID:         "UP-ERR-002",
		RuleName:       "Empty Catch Blocks",
		Message:        "Review catch blocks to ensure proper error logging",
		Description:    "All catch blocks should log errors with sufficient detail for debugging",
		Recommendation: "Ensure each catch block logs: error message, timestamp, workflow name, and context data. Use Log Message activity or custom logging framework",
		Impact:         "Maintainability - Difficult to debug production issues",
		Effort:         "Low",
	}}
}

func checkRetryLogic(_ models.WorkflowSnapshot, activities []models.Activity) []models.Finding {
	hasNetwork := anyActivity(activities, func(typeLower, displayLower string) bool {
		return strings.Contains(typeLower, "http") ||
			strings.Contains(typeLower, "invoke") ||
			strings.Contains(displayLower, "api") ||
			strings.Contains(displayLower, "web service")
	})

	hasRetry := anyActivity(activities, func(typeLower, displayLower string) bool {
		return strings.Contains(typeLower, "retry") || strings.Contains(displayLower, "retry")
	})

	if !hasNetwork || hasRetry {
		return nil
	}

	return []models.Finding{{
		Category:       models.CategoryErrorHandling,
		Severity:       models.SeverityMajor,
		RuleID:         "UP-ERR-003",
		RuleName:       "No Retry Logic for Transient Failures",
		Message:        "API/HTTP activities detected without retry logic",
		Description:    "Network operations can fail transiently and should have automatic retry mechanisms",
		Recommendation: "Wrap HTTP/API calls in Retry Scope activity with exponential backoff. Configure 3-5 retries with increasing intervals (1s, 2s, 4s)",
		Impact:         "Reliability - Temporary network issues cause permanent failures",
		Effort:         "Low",
	}}
}

func checkExcessiveNesting(workflow models.WorkflowSnapshot, _ []models.Activity) []models.Finding {
	if workflow.NestingDepth <= 5 {
		return nil
	}

	return []models.Finding{{
		Category:       models.CategoryPerformance,
		Severity:       models.SeverityMajor,
		RuleID:         "UP-PERF-001",
		RuleName:       "Excessive Nesting Depth",
		Message:        fmt.Sprintf("Nesting depth of %d exceeds recommended maximum", workflow.NestingDepth),
		Description:    "Deep nesting makes workflows hard to read, maintain, and can impact performance",
		Recommendation: "Refactor deeply nested logic into separate workflows or use sub-workflows. Maximum recommended nesting: 5 levels",
		Impact:         "Performance & Maintainability",
		Effort:         "High",
	}}
}

func checkLargeWorkflow(_ models.WorkflowSnapshot, activities []models.Activity) []models.Finding {
	count := len(activities)
	if count <= 50 {
		return nil
	}

	severity := models.SeverityMajor
	if count > 100 {
		severity = models.SeverityCritical
	}

	return []models.Finding{{
		Category:       models.CategoryPerformance,
		Severity:       severity,
		RuleID:         "UP-PERF-002",
		RuleName:       "Large Workflow - Consider Modularization",
		Message:        fmt.Sprintf("Workflow has %d activities, exceeding recommended size", count),
		Description:    "Large workflows are difficult to maintain, test, and reuse. Best practice is to keep workflows under 50 activities",
		Recommendation: "Break down workflow into logical sub-workflows based on functional boundaries. Use Invoke Workflow File activity to call sub-workflows",
		Impact:         "Maintainability & Performance",
		Effort:         "High",
	}}
}

func checkSelectorOptimization(_ models.WorkflowSnapshot, activities []models.Activity) []models.Finding {
	uiActivities := 0

	for _, activity := range activities {
		typeLower := strings.ToLower(activity.Type)
		displayLower := strings.ToLower(activity.DisplayName)

		if strings.Contains(typeLower, "click") || strings.Contains(typeLower, "type") ||
			strings.Contains(typeLower, "get") ||
			strings.Contains(displayLower, "click") || strings.Contains(displayLower, "type into") {
			uiActivities++
		}
	}

	if uiActivities <= 10 {
		return nil
	}

	return []models.Finding{{
		Category:       models.CategoryPerformance,
		Severity:       models.SeverityInfo,
		RuleID:         "UP-PERF-003",
		RuleName:       "Selector Optimization",
		Message:        fmt.Sprintf("Workflow has %d UI activities - review selector performance", uiActivities),
		Description:    "Multiple UI activities detected. Ensure selectors use stable attributes (idx should be avoided)",
		Recommendation: "Use UiPath UI Explorer to validate selectors. Prefer ID and Name attributes over positional indices. Consider using Anchors for dynamic UIs",
		Impact:         "Performance - Slow selector resolution",
		Effort:         "Medium",
	}}
}

func checkHardcodedCredentials(workflow models.WorkflowSnapshot, _ []models.Activity) []models.Finding {
	var findings []models.Finding

	for _, variable := range workflow.Variables {
		nameLower := strings.ToLower(variable.Name)
		value := variable.DefaultValue

		suspicious := false

		for _, pattern := range credentialPatterns {
			if strings.Contains(nameLower, pattern) {
				suspicious = true

				break
			}
		}

		if !suspicious || value == "" {
			continue
		}

		// References to Config entries or Orchestrator Assets are the
		// sanctioned pattern, not a literal secret.
		if strings.Contains(value, "Config") || strings.Contains(value, "Asset") {
			continue
		}

		findings = append(findings, models.Finding{
			Category:       models.CategorySecurity,
			Severity:       models.SeverityCritical,
			RuleID:         "UP-SEC-001",
			RuleName:       "Hardcoded Credentials",
			Message:        fmt.Sprintf("Potential hardcoded credential found in variable %q", variable.Name),
			Description:    "Credentials should never be stored in workflow code. Use Orchestrator Assets or Windows Credential Manager",
			Recommendation: "Replace hardcoded value with Get Credential activity or Get Orchestrator Asset activity. Store credentials in Orchestrator vault",
			ActivityName:   variable.Name,
			Impact:         "Security - Credential exposure risk",
			Effort:         "Low",
		})
	}

	return findings
}

func checkSensitiveDataLogging(_ models.WorkflowSnapshot, activities []models.Activity) []models.Finding {
	hasLogging := anyActivity(activities, func(typeLower, displayLower string) bool {
		return strings.Contains(typeLower, "log") || strings.Contains(displayLower, "log")
	})

	if !hasLogging {
		return nil
	}

	return []models.Finding{{
		Category:       models.CategorySecurity,
		Severity:       models.SeverityInfo,
		RuleID:         "UP-SEC-002",
		RuleName:       "Sensitive Data Logging",
		Message:        "Review log activities to ensure no sensitive data is logged",
		Description:    "Log statements should not contain PII, credentials, or sensitive business data",
		Recommendation: "Review all Log Message activities. Mask or redact sensitive fields before logging. Use appropriate log levels (Info, Debug, Error)",
		Impact:         "Security - Data exposure in logs",
		Effort:         "Low",
	}}
}

func checkMissingAnnotations(_ models.WorkflowSnapshot, activities []models.Activity) []models.Finding {
	if len(activities) <= 20 {
		return nil
	}

	return []models.Finding{{
		Category:       models.CategoryMaintainability,
		Severity:       models.SeverityMinor,
		RuleID:         "UP-MAINT-001",
		RuleName:       "Missing Annotations",
		Message:        "Complex workflow should have annotations for better understanding",
		Description:    "Annotations help other developers understand workflow logic, especially for complex processes",
		Recommendation: "Add annotation activities to explain: business logic, decision points, data transformations, and integration points",
		Impact:         "Maintainability - Difficult for others to understand",
		Effort:         "Low",
	}}
}

func checkLoggingStandards(_ models.WorkflowSnapshot, activities []models.Activity) []models.Finding {
	hasLogging := anyActivity(activities, func(typeLower, displayLower string) bool {
		return strings.Contains(typeLower, "log") || strings.Contains(displayLower, "log")
	})

	if hasLogging || len(activities) <= 10 {
		return nil
	}

	return []models.Finding{{
		Category:       models.CategoryStandards,
		Severity:       models.SeverityMinor,
		RuleID:         "UP-STD-001",
		RuleName:       "Logging Standards",
		Message:        "Workflow lacks logging activities",
		Description:    "Best practice is to log key events: workflow start, workflow end, errors, and major decision points",
		Recommendation: "Add Log Message activities at: workflow entry, workflow exit, error catch blocks, and before/after critical operations",
		Impact:         "Maintainability - Difficult to troubleshoot issues",
		Effort:         "Low",
	}}
}
