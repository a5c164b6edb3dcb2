package risor

import (
	"context"
	"errors"
	"fmt"

	risorLib "github.com/risor-io/risor"
	risorCompiler "github.com/risor-io/risor/compiler"
	risorErrors "github.com/risor-io/risor/errz"
	risorParser "github.com/risor-io/risor/parser"
)

// compileCode parses and compiles generated module source into bytecode.
func compileCode(src string, options ...risorCompiler.Option) (*risorCompiler.Code, error) {
	ast, err := risorParser.Parse(context.Background(), src)
	if err != nil {
		// Use the friendlier error rendering when there's a syntax error.
		errMsg := err.Error()
		var friendlyErr risorErrors.FriendlyError
		if errors.As(err, &friendlyErr) {
			errMsg = friendlyErr.FriendlyErrorMessage()
		}
		return nil, fmt.Errorf("compilation: %s", errMsg)
	}

	bc, err := risorCompiler.Compile(ast, options...)
	if err != nil {
		return nil, err
	}

	return bc, nil
}

// compileWithGlobals compiles generated source whose globals are only bound
// at render time: the names are declared so compilation succeeds even though
// the values arrive per render call.
func compileWithGlobals(src string, globals []string) (*risorCompiler.Code, error) {
	cfg := risorLib.NewConfig()
	globalNames := append(cfg.GlobalNames(), globals...)

	options := []risorCompiler.Option{
		risorCompiler.WithGlobalNames(globalNames),
	}

	return compileCode(src, options...)
}
