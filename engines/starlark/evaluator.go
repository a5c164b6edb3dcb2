package starlark

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/tavener/go-hamlet/internal/helpers"
	"github.com/tavener/go-hamlet/platform"
	"github.com/tavener/go-hamlet/platform/constants"
	"github.com/tavener/go-hamlet/platform/template"

	starlarkLib "go.starlark.net/starlark"
)

// Renderer executes a compiled template's generated code on the Starlark VM.
type Renderer struct {
	// universe is the global variable map for the Starlark VM
	universe starlarkLib.StringDict

	// unit contains the compiled template and data provider
	unit *template.TemplateUnit

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewRenderer creates a Renderer for a compiled template unit.
func NewRenderer(handler slog.Handler, unit *template.TemplateUnit) *Renderer {
	handler, logger := helpers.SetupLogger(handler, "starlark", "Renderer")

	universe := standardModules()

	// The ctx global is bound at render time with the provider's data.
	universe[constants.Ctx] = starlarkLib.None

	return &Renderer{
		universe:   universe,
		unit:       unit,
		logHandler: handler,
		logger:     logger,
	}
}

func (r *Renderer) String() string {
	return "starlark.Renderer"
}

// prepareGlobals merges the universe and input globals into a single Starlark
// dictionary.
func (r *Renderer) prepareGlobals(inputGlobals starlarkLib.StringDict) starlarkLib.StringDict {
	merged := make(starlarkLib.StringDict, len(r.universe)+len(inputGlobals))
	maps.Copy(merged, r.universe)

	// Render-specific globals may override universe values.
	maps.Copy(merged, inputGlobals)

	return merged
}

// exec runs the compiled program with the provided globals and reads back the
// 'result' global the render stub assigns.
func (r *Renderer) exec(ctx context.Context, prog *starlarkLib.Program, globals starlarkLib.StringDict) (*renderResult, error) {
	logger := r.logger.WithGroup("exec")
	startTime := time.Now()

	thread := &starlarkLib.Thread{
		Name: "render",
		Print: func(thread *starlarkLib.Thread, msg string) {
			logger.InfoContext(ctx, msg, "starlark-thread", thread.Name)
		},
	}

	// Set up cancellation from context
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()

	finalGlobals, err := prog.Init(thread, globals)
	renderTime := time.Since(startTime)

	if err != nil {
		return nil, fmt.Errorf("starlark execution error: %w", err)
	}

	resultVal, ok := finalGlobals["result"]
	if !ok || resultVal == nil {
		return nil, fmt.Errorf("generated code did not produce a result")
	}

	return newRenderResult(r.logHandler, resultVal, renderTime, ""), nil
}

// Render runs the generated rendering function against the data returned by
// the unit's provider.
func (r *Renderer) Render(ctx context.Context) (platform.Response, error) {
	logger := r.logger.WithGroup("Render")
	if r.unit == nil {
		return nil, fmt.Errorf("template unit is nil")
	}

	bytecode := r.unit.GetContent().GetByteCode()
	if bytecode == nil {
		return nil, ErrBytecodeNil
	}

	prog, ok := bytecode.(*starlarkLib.Program)
	if !ok {
		return nil, fmt.Errorf("invalid bytecode type: expected *starlark.Program, got %T", bytecode)
	}

	templateID := r.unit.GetID()
	if templateID == "" {
		return nil, fmt.Errorf("template ID is empty")
	}
	logger = logger.With("templateID", templateID)

	var inputData map[string]any
	var err error

	if r.unit.GetDataProvider() != nil {
		inputData, err = r.unit.GetDataProvider().GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get render data from provider: %w", err)
		}
	} else {
		inputData = make(map[string]any)
	}

	globals, err := convertToStringDict(inputData)
	if err != nil {
		return nil, fmt.Errorf("failed to convert render data: %w", err)
	}

	merged := r.prepareGlobals(globals)

	result, err := r.exec(ctx, prog, merged)
	if err != nil {
		return nil, fmt.Errorf("render error: %w", err)
	}
	result.templateID = templateID

	logger.Debug("render complete", "type", result.Type(), "renderTime", result.GetRenderTime())
	return result, nil
}

// AddDataToContext implements the data preparer pattern for renderers whose
// provider reads from the context.
func (r *Renderer) AddDataToContext(ctx context.Context, d ...map[string]any) (context.Context, error) {
	if r.unit == nil || r.unit.GetDataProvider() == nil {
		return ctx, fmt.Errorf("no data provider available")
	}

	type contextAdder interface {
		AddDataToContext(context.Context, ...map[string]any) (context.Context, error)
	}

	adder, ok := r.unit.GetDataProvider().(contextAdder)
	if !ok {
		return ctx, fmt.Errorf("data provider does not accept context data")
	}
	return adder.AddDataToContext(ctx, d...)
}
