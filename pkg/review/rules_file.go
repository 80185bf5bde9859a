package review

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/botlens/botlens/pkg/models"
)

// LoadRulesFile reads a JSON array of custom rules from disk. Every rule must
// pass struct validation; a file with one malformed rule is rejected whole so
// misconfigurations surface at load time instead of silently at evaluation.
func LoadRulesFile(path string) ([]models.CustomRule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read custom rules file: %w", err)
	}

	var rules []models.CustomRule
	if err := json.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("decode custom rules file: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	for i, rule := range rules {
		if err := validate.Struct(rule); err != nil {
			return nil, fmt.Errorf("custom rule %d (%s) invalid: %w", i, rule.Name, err)
		}
	}

	return rules, nil
}
