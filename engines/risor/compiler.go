package risor

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tavener/go-hamlet/haml"
	"github.com/tavener/go-hamlet/platform/constants"
	"github.com/tavener/go-hamlet/platform/template"
)

// Compiler turns template source into a generated Risor module and the
// bytecode to run it. The generated module defines the rendering function; a
// render stub appended at the end calls it so its output is the value the VM
// returns.
type Compiler struct {
	opts       haml.Options
	logHandler slog.Handler
	logger     *slog.Logger
}

// NewCompiler creates a new Risor template compiler using the functional
// options pattern.
func NewCompiler(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{}

	c.applyDefaults()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid compiler configuration: %w", err)
	}

	c.setupLogger()
	return c, nil
}

func (c *Compiler) String() string {
	return "risor.Compiler"
}

// Compile reads template source and returns the generated content: the
// original source, the emitted Risor module and the compiled bytecode.
func (c *Compiler) Compile(templateReader io.ReadCloser) (template.GeneratedContent, error) {
	if templateReader == nil {
		return nil, ErrContentNil
	}

	source, err := io.ReadAll(templateReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	if err := templateReader.Close(); err != nil {
		return nil, fmt.Errorf("failed to close reader: %w", err)
	}

	return c.compile(source)
}

func (c *Compiler) compile(source []byte) (*Executable, error) {
	logger := c.logger
	if len(source) == 0 {
		logger.Error("Compile called with empty template")
		return nil, ErrContentNil
	}

	logger.Debug("Starting compilation")

	tree, err := haml.Parse(string(source), c.opts)
	if err != nil {
		logger.Warn("Template parsing failed", "error", err)
		return nil, err
	}

	mod := Emit(tree, c.opts)

	// The render stub's call is the module's final expression, so the VM
	// returns the rendered markup directly.
	renderSrc := mod.Source + mod.FuncName + "(" + constants.Ctx + ")\n"
	bc, err := compileWithGlobals(renderSrc, mod.Globals)
	if err != nil {
		logger.Warn("Generated code failed to compile", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	if bc == nil {
		logger.Error("Compilation returned nil bytecode")
		return nil, ErrBytecodeNil
	}

	exec := newExecutable(source, mod, bc)
	if exec == nil {
		logger.Warn("Failed to create Executable from bytecode")
		return nil, ErrExecCreationFailed
	}

	logger.Debug("Compilation completed", "entrypoint", mod.Entrypoint)
	return exec, nil
}
