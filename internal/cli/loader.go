package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/olincollege/passwordgame/internal/compiler"
	"github.com/olincollege/passwordgame/internal/rules"
	"github.com/olincollege/passwordgame/internal/seq"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // generic/unknown error
	ErrCodeScanError   = "E002" // directory scan error
	ErrCodeNoFiles     = "E003" // no CUE files found
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeNotFound    = "E005" // path not found
	ErrCodeBuildFailed = "E006" // CUE build failed
	ErrCodeCompile     = "E007" // rule declaration did not compile
)

// LoadError represents an error that occurred during catalog loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadCatalogDir loads, compiles, and validates the rule catalog declared in
// a directory of CUE files. All validation errors are collected, so an
// author sees every problem in one run instead of fixing them one at a time.
func LoadCatalogDir(dir string) (*rules.Catalog, []error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("rules directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing rules directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	cueFiles, err := FindCUEFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(cueFiles) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	list, err := compiler.CompileCatalog(value)
	if err != nil {
		return nil, []error{convertCompileError(err)}
	}

	if verrs := compiler.Validate(list); len(verrs) > 0 {
		errs := make([]error, 0, len(verrs))
		for _, ve := range verrs {
			errs = append(errs, &LoadError{
				Code:    ve.Code,
				Message: fmt.Sprintf("%s: %s", ve.Field, ve.Message),
			})
		}
		return nil, errs
	}

	catalog, err := rules.NewCatalog(list)
	if err != nil {
		// Validate guarantees NewCatalog acceptance; reaching this is a bug.
		return nil, []error{&LoadError{Code: ErrCodeGeneric, Message: err.Error()}}
	}
	return catalog, nil
}

// FindCUEFiles walks the directory and returns all .cue file paths.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// convertCompileError converts a compiler error to a LoadError with position info.
func convertCompileError(err error) *LoadError {
	if compileErr, ok := err.(*compiler.CompileError); ok {
		return &LoadError{
			Code:    ErrCodeCompile,
			Message: fmt.Sprintf("%s: %s", compileErr.Field, compileErr.Message),
			Pos:     compileErr.Pos,
		}
	}
	return &LoadError{Code: ErrCodeGeneric, Message: err.Error()}
}

// resolveCatalog returns the catalog for a command: the catalog compiled
// from rulesDir when given, otherwise the embedded default.
func resolveCatalog(formatter *OutputFormatter, rulesDir string) (*rules.Catalog, error) {
	if rulesDir == "" {
		catalog, err := compiler.DefaultCatalog()
		if err != nil {
			_ = formatter.Error(ErrCodeBuildFailed, err.Error(), nil)
			return nil, WrapExitError(ExitCommandError, "embedded catalog", err)
		}
		return catalog, nil
	}

	catalog, errs := LoadCatalogDir(rulesDir)
	if len(errs) > 0 {
		for _, err := range errs {
			if loadErr, ok := err.(*LoadError); ok {
				_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
			} else {
				_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
			}
		}
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("catalog load failed with %d error(s)", len(errs)))
	}
	return catalog, nil
}

// resolvePuzzle builds the look-and-say puzzle for a command. A nonzero
// iteration count pins the pair exactly; otherwise the count is drawn from
// the seed, with 0 meaning "seed from the wall clock".
func resolvePuzzle(iterations int, randSeed int64) seq.Puzzle {
	if iterations != 0 {
		return seq.NewPuzzle(seq.FixedSource(iterations))
	}
	if randSeed == 0 {
		randSeed = time.Now().UnixNano()
	}
	return seq.NewPuzzle(seq.NewRandSource(randSeed))
}
