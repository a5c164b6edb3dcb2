package starlark

import (
	engineTypes "github.com/tavener/go-hamlet/engines/types"

	starlarkLib "go.starlark.net/starlark"
)

// Executable represents one compiled template: the source it came from, the
// generated Starlark module and the program for the render stub.
type Executable struct {
	templateSource []byte
	module         Module
	ByteCode       *starlarkLib.Program
}

func newExecutable(templateSource []byte, module Module, byteCode *starlarkLib.Program) *Executable {
	if len(templateSource) == 0 || byteCode == nil {
		return nil
	}

	return &Executable{
		templateSource: templateSource,
		module:         module,
		ByteCode:       byteCode,
	}
}

func (e *Executable) GetSource() string {
	return string(e.templateSource)
}

func (e *Executable) GetGeneratedSource() string {
	return e.module.Source
}

func (e *Executable) GetByteCode() any {
	return e.ByteCode
}

func (e *Executable) GetStarlarkByteCode() *starlarkLib.Program {
	return e.ByteCode
}

func (e *Executable) GetEngineType() engineTypes.Type {
	return engineTypes.Starlark
}

func (e *Executable) GetEntrypoint() string {
	return e.module.Entrypoint
}

// GetFuncName returns the top-level identifier the rendering function is
// defined as in the generated module.
func (e *Executable) GetFuncName() string {
	return e.module.FuncName
}
