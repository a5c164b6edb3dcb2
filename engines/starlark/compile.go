package starlark

import (
	"fmt"

	"go.starlark.net/syntax"

	starlarkLib "go.starlark.net/starlark"
)

// compileProgram parses and compiles generated module source into a Starlark
// program, predeclaring the standard modules plus the provided globals.
func compileProgram(src []byte, opts *syntax.FileOptions, globals starlarkLib.StringDict) (*starlarkLib.Program, error) {
	if src == nil {
		return nil, fmt.Errorf("generated source is nil")
	}

	if opts == nil {
		opts = &syntax.FileOptions{}
	}

	merged := make(starlarkLib.StringDict)
	for k, v := range standardModules() {
		merged[k] = v
	}
	for k, v := range globals {
		merged[k] = v
	}

	f, err := opts.Parse("", src, 0)
	if err != nil {
		return nil, fmt.Errorf("compilation error: %w", err)
	}

	prog, err := starlarkLib.FileProgram(f, merged.Has)
	if err != nil {
		return nil, fmt.Errorf("compilation error: %w", err)
	}

	return prog, nil
}

// compileWithEmptyGlobals compiles generated source whose globals are only
// bound at render time: the names are predeclared as None so resolution
// succeeds, and GlobalReassign lets the render stub rebind them.
func compileWithEmptyGlobals(src []byte, globals []string) (*starlarkLib.Program, error) {
	opts := &syntax.FileOptions{
		GlobalReassign: true,
	}

	stdModules := standardModules()

	predeclared := make(starlarkLib.StringDict, len(globals))
	for _, name := range globals {
		if stdModules.Has(name) {
			continue
		}
		predeclared[name] = starlarkLib.None
	}

	return compileProgram(src, opts, predeclared)
}
