package compiler

import (
	"fmt"
	"strings"

	"github.com/olincollege/passwordgame/internal/rules"
)

// Validation error codes (E100-E199).
const (
	ErrRuleIDEmpty        = "E101" // rule id is required
	ErrUnknownKind        = "E102" // kind is not a known predicate
	ErrMessageEmpty       = "E103" // message is required
	ErrDuplicateID        = "E104" // duplicate rule id
	ErrCatalogEmpty       = "E105" // catalog declares no rules
	ErrLookAndSayCount    = "E106" // catalog must declare exactly one look_and_say rule
	ErrMissingPlaceholder = "E107" // look_and_say message lacks the {last} placeholder
)

// ValidationError represents a catalog validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks a compiled rule list against catalog invariants.
// Returns all errors found (does not fail-fast).
//
// A list that passes Validate is guaranteed to be accepted by
// rules.NewCatalog.
func Validate(list []rules.Rule) []ValidationError {
	var errs []ValidationError

	// E105: at least one rule required
	if len(list) == 0 {
		errs = append(errs, ValidationError{
			Field:   "rules",
			Message: "catalog must declare at least one rule",
			Code:    ErrCatalogEmpty,
		})
		return errs
	}

	seen := make(map[string]bool, len(list))
	lookAndSay := 0

	for i, r := range list {
		field := fmt.Sprintf("rules[%d]", i)

		// E101: id is required
		if strings.TrimSpace(r.ID) == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".id",
				Message: "id is required and must be non-empty",
				Code:    ErrRuleIDEmpty,
			})
		}

		// E104: duplicate rule id
		if r.ID != "" && seen[r.ID] {
			errs = append(errs, ValidationError{
				Field:   field + ".id",
				Message: fmt.Sprintf("duplicate rule id: %q", r.ID),
				Code:    ErrDuplicateID,
			})
		}
		seen[r.ID] = true

		// E102: kind must be a known predicate
		if !rules.ValidKinds[r.Kind] {
			errs = append(errs, ValidationError{
				Field:   field + ".kind",
				Message: fmt.Sprintf("unknown kind %q", r.Kind),
				Code:    ErrUnknownKind,
			})
		}

		// E103: message is required
		if strings.TrimSpace(r.Message) == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".message",
				Message: "message is required and must be non-empty",
				Code:    ErrMessageEmpty,
			})
		}

		if r.Kind == rules.KindLookAndSay {
			lookAndSay++

			// E107: the player needs the prior term to compute the answer
			if r.Message != "" && !strings.Contains(r.Message, rules.MessagePlaceholder) {
				errs = append(errs, ValidationError{
					Field:   field + ".message",
					Message: fmt.Sprintf("look_and_say message must contain the %s placeholder", rules.MessagePlaceholder),
					Code:    ErrMissingPlaceholder,
				})
			}
		}
	}

	// E106: exactly one look_and_say rule
	if lookAndSay != 1 {
		errs = append(errs, ValidationError{
			Field:   "rules",
			Message: fmt.Sprintf("catalog must declare exactly one look_and_say rule, found %d", lookAndSay),
			Code:    ErrLookAndSayCount,
		})
	}

	return errs
}
