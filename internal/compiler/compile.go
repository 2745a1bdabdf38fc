// Package compiler turns CUE catalog declarations into rule catalogs.
//
// The catalog is declared as an ordered CUE list; list order is the gating
// order and is preserved exactly through compilation. Using a list rather
// than a struct keeps the ordering explicit in the source text instead of
// depending on field iteration order.
package compiler

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/token"

	"github.com/olincollege/passwordgame/internal/rules"
)

// CompileError reports a failure to compile a CUE declaration into a rule,
// with the CUE source position when available.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CompileCatalog extracts the ordered rule list from a CUE value.
//
// The value must contain a top-level "rules" list. Each element is compiled
// with CompileRule; element order is preserved. The result is the raw rule
// list - callers run Validate and rules.NewCatalog on it before use.
func CompileCatalog(v cue.Value) ([]rules.Rule, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	listVal := v.LookupPath(cue.ParsePath("rules"))
	if !listVal.Exists() {
		return nil, &CompileError{
			Field:   "rules",
			Message: "catalog must declare a top-level \"rules\" list",
			Pos:     v.Pos(),
		}
	}

	iter, err := listVal.List()
	if err != nil {
		return nil, &CompileError{
			Field:   "rules",
			Message: fmt.Sprintf("\"rules\" must be a list: %v", err),
			Pos:     listVal.Pos(),
		}
	}

	var list []rules.Rule
	for iter.Next() {
		r, err := CompileRule(iter.Value())
		if err != nil {
			return nil, err
		}
		list = append(list, *r)
	}

	return list, nil
}

// CompileRule parses a single CUE rule declaration.
//
// A declaration has three required string fields:
//
//	{id: "sicilian", kind: "sicilian", message: "Respond to e4 with the Sicilian Defense."}
//
// Kind membership and catalog-level invariants are checked by Validate,
// not here, so a caller can collect every problem in one pass.
func CompileRule(v cue.Value) (*rules.Rule, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	r := &rules.Rule{}

	id, err := stringField(v, "id")
	if err != nil {
		return nil, err
	}
	r.ID = id

	kind, err := stringField(v, "kind")
	if err != nil {
		return nil, err
	}
	r.Kind = rules.Kind(kind)

	message, err := stringField(v, "message")
	if err != nil {
		return nil, err
	}
	r.Message = message

	return r, nil
}

// stringField extracts a required string field from a rule declaration.
func stringField(v cue.Value, name string) (string, error) {
	fieldVal := v.LookupPath(cue.ParsePath(name))
	if !fieldVal.Exists() {
		return "", &CompileError{
			Field:   name,
			Message: fmt.Sprintf("rule declaration requires %q field", name),
			Pos:     v.Pos(),
		}
	}
	s, err := fieldVal.String()
	if err != nil {
		return "", &CompileError{
			Field:   name,
			Message: fmt.Sprintf("%q must be a string: %v", name, err),
			Pos:     fieldVal.Pos(),
		}
	}
	return s, nil
}

// formatCUEError wraps a raw CUE evaluation error as a CompileError.
func formatCUEError(err error) error {
	msg := strings.TrimSpace(err.Error())
	return &CompileError{Field: "cue", Message: msg}
}
