package enrichment

import (
	"strings"

	"hrreport/pkg/contracts/domain"
)

// Rule maps a keyword to a role category. A rule matches when the keyword
// appears anywhere in the lowercased job title.
type Rule struct {
	Keyword  string
	Category string
}

// DefaultRules returns the built-in keyword table. Order matters: the first
// matching rule wins, so a title containing several keywords takes the
// category of whichever keyword comes first in this list.
func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "analyst", Category: domain.CategoryDataAnalysis},
		{Keyword: "engineer", Category: domain.CategoryEngineering},
		{Keyword: "developer", Category: domain.CategoryEngineering},
		{Keyword: "manager", Category: domain.CategoryManagement},
		{Keyword: "administrator", Category: domain.CategoryITSupport},
		{Keyword: "representative", Category: domain.CategoryCustomerSupport},
		{Keyword: "vp", Category: domain.CategoryExecutive},
		{Keyword: "nurse", Category: domain.CategoryHealthcare},
	}
}

// Classifier assigns role categories from an ordered rule list
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier over a copy of rules.
// A nil or empty slice falls back to DefaultRules.
func NewClassifier(rules []Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	normalized := make([]Rule, 0, len(rules))
	for _, r := range rules {
		kw := strings.ToLower(strings.TrimSpace(r.Keyword))
		if kw == "" {
			continue
		}
		normalized = append(normalized, Rule{Keyword: kw, Category: r.Category})
	}
	return &Classifier{rules: normalized}
}

// Classify returns the category of the first rule whose keyword occurs in
// title, or domain.CategoryOther when nothing matches.
func (c *Classifier) Classify(title string) string {
	lower := strings.ToLower(title)
	for _, r := range c.rules {
		if strings.Contains(lower, r.Keyword) {
			return r.Category
		}
	}
	return domain.CategoryOther
}

// Rules returns a copy of the classifier's rule list in evaluation order
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}
