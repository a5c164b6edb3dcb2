// Package template holds the compile-once/render-many unit of the pipeline:
// a template source, the code generated from it and the engine-specific
// bytecode, bundled with the data provider used at render time.
package template

import (
	"io"

	engineTypes "github.com/tavener/go-hamlet/engines/types"
)

// Compiler turns raw template source into generated, validated target code.
// Implementations parse the indentation-based markup, emit the source of the
// rendering function in their target language and compile that source to
// engine bytecode.
//
// Example usage:
//
//	var comp Compiler = starlark.NewCompiler(...)
//	content, err := comp.Compile(reader)
//	if err != nil {
//	    // parse error (with template line number) or generated-code defect
//	}
type Compiler interface {
	// Compile reads template source and returns it as generated content
	// ready for execution or for writing to disk.
	Compile(templateReader io.ReadCloser) (GeneratedContent, error)
}

// GeneratedContent is the compiled form of one template: the original
// source, the emitted target-language module and the bytecode the engine
// executes.
type GeneratedContent interface {
	// GetSource returns the template source the content was compiled from.
	GetSource() string

	// GetGeneratedSource returns the emitted target-language module text:
	// the rendering function plus its namespace scaffolding. This is the
	// artifact a host can also write to disk and load by convention.
	GetGeneratedSource() string

	// GetByteCode returns the compiled bytecode in an engine-specific
	// format; the engine asserts it back into its own type at render time.
	GetByteCode() any

	// GetEngineType returns the engine this content is intended to run on.
	GetEngineType() engineTypes.Type

	// GetEntrypoint returns the dotted namespace path the rendering
	// function is bound under (e.g. "HAML.users.show").
	GetEntrypoint() string
}
