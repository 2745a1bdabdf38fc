package rules

import (
	"fmt"

	"github.com/olincollege/passwordgame/internal/seq"
)

// Catalog is an ordered rule list. Declaration order is the gating order
// and is fixed for the lifetime of a session.
//
// INVARIANTS:
//   - Rule order NEVER changes after construction
//   - Rule IDs are unique
//   - Every kind is a member of ValidKinds
//   - Exactly one rule has kind look_and_say
type Catalog struct {
	rules []Rule
}

// NewCatalog validates and copies the rule list.
//
// The list is copied to prevent external mutation from breaking the
// declaration order invariant.
func NewCatalog(list []Rule) (*Catalog, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("catalog must declare at least one rule")
	}

	seen := make(map[string]bool, len(list))
	lookAndSay := 0
	for i, r := range list {
		if r.ID == "" {
			return nil, fmt.Errorf("rule %d: id is required", i)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("duplicate rule ID: %s", r.ID)
		}
		seen[r.ID] = true

		if !ValidKinds[r.Kind] {
			return nil, fmt.Errorf("rule %s: unknown kind %q", r.ID, r.Kind)
		}
		if r.Message == "" {
			return nil, fmt.Errorf("rule %s: message is required", r.ID)
		}
		if r.Kind == KindLookAndSay {
			lookAndSay++
		}
	}
	if lookAndSay != 1 {
		return nil, fmt.Errorf("catalog must declare exactly one look_and_say rule, found %d", lookAndSay)
	}

	rules := make([]Rule, len(list))
	copy(rules, list)
	return &Catalog{rules: rules}, nil
}

// Len returns the number of rules.
func (c *Catalog) Len() int {
	return len(c.rules)
}

// Rule returns the rule at position i in gating order.
func (c *Catalog) Rule(i int) Rule {
	return c.rules[i]
}

// Rules returns a copy of the rule list in gating order.
func (c *Catalog) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Messages returns the rendered message list in gating order, with the
// look_and_say message interpolated against p.
func (c *Catalog) Messages(p seq.Puzzle) []string {
	out := make([]string, len(c.rules))
	for i, r := range c.rules {
		out[i] = RenderMessage(r, p)
	}
	return out
}
