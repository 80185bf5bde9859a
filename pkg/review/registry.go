package review

import (
	"fmt"
	"log/slog"

	"github.com/botlens/botlens/pkg/models"
)

// Registry holds the rule catalog keyed by rule ID.
type Registry struct {
	logger *slog.Logger
	rules  map[string]Rule
	order  []string
}

// NewRegistry returns a registry preloaded with the built-in UiPath and
// Blue Prism catalogs.
func NewRegistry(logger *slog.Logger) *Registry {
	registry := &Registry{
		logger: logger,
		rules:  make(map[string]Rule),
	}

	for _, rule := range uiPathRules() {
		if err := registry.Register(rule); err != nil {
			logger.Error("skipping duplicate built-in rule", "rule_id", rule.ID)
		}
	}

	for _, rule := range bluePrismRules() {
		if err := registry.Register(rule); err != nil {
			logger.Error("skipping duplicate built-in rule", "rule_id", rule.ID)
		}
	}

	return registry
}

// Register adds a rule to the catalog. Rule IDs must be unique.
func (r *Registry) Register(rule Rule) error {
	if _, exists := r.rules[rule.ID]; exists {
		return fmt.Errorf("rule '%s' already registered", rule.ID)
	}

	r.rules[rule.ID] = rule
	r.order = append(r.order, rule.ID)

	return nil
}

// ForPlatform returns the rules applicable to the given platform in
// registration order.
func (r *Registry) ForPlatform(platform models.Platform) []Rule {
	selected := make([]Rule, 0, len(r.order))

	for _, id := range r.order {
		rule := r.rules[id]
		if rule.Platform == platform || rule.Platform == PlatformAny {
			selected = append(selected, rule)
		}
	}

	return selected
}

// All returns every registered rule in registration order.
func (r *Registry) All() []Rule {
	all := make([]Rule, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.rules[id])
	}

	return all
}
