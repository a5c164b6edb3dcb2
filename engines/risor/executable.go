package risor

import (
	risorCompiler "github.com/risor-io/risor/compiler"

	engineTypes "github.com/tavener/go-hamlet/engines/types"
)

// Executable represents one compiled template: the source it came from, the
// generated Risor module and the bytecode for the render stub.
type Executable struct {
	templateSource []byte
	module         Module
	ByteCode       *risorCompiler.Code
}

func newExecutable(templateSource []byte, module Module, byteCode *risorCompiler.Code) *Executable {
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

func (e *Executable) GetRisorByteCode() *risorCompiler.Code {
	return e.ByteCode
}

func (e *Executable) GetEngineType() engineTypes.Type {
	return engineTypes.Risor
}

func (e *Executable) GetEntrypoint() string {
	return e.module.Entrypoint
}

// GetFuncName returns the top-level identifier the rendering function is
// defined as in the generated module.
func (e *Executable) GetFuncName() string {
	return e.module.FuncName
}
