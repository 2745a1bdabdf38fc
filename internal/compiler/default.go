package compiler

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/olincollege/passwordgame/internal/rules"
)

//go:embed catalog.cue
var defaultCatalogCUE string

var (
	defaultOnce    sync.Once
	defaultCatalog *rules.Catalog
	defaultErr     error
)

// DefaultCatalog compiles the embedded catalog declaration.
//
// The result is computed once and shared; the catalog is immutable so the
// shared value is safe to hand to every session.
func DefaultCatalog() (*rules.Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = compileDefault()
	})
	return defaultCatalog, defaultErr
}

func compileDefault() (*rules.Catalog, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(defaultCatalogCUE, cue.Filename("catalog.cue"))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("building embedded catalog: %w", err)
	}

	list, err := CompileCatalog(v)
	if err != nil {
		return nil, fmt.Errorf("compiling embedded catalog: %w", err)
	}

	if errs := Validate(list); len(errs) > 0 {
		// The embedded catalog ships with the binary; any validation error
		// here is a build defect, not user input.
		return nil, fmt.Errorf("embedded catalog invalid: %s", errs[0].Error())
	}

	return rules.NewCatalog(list)
}
