package risor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	risorLib "github.com/risor-io/risor"
	risorCompiler "github.com/risor-io/risor/compiler"

	"github.com/tavener/go-hamlet/internal/helpers"
	"github.com/tavener/go-hamlet/platform"
	"github.com/tavener/go-hamlet/platform/constants"
	"github.com/tavener/go-hamlet/platform/template"
)

// Renderer executes a compiled template's generated code on the Risor VM.
type Renderer struct {
	// ctxKey is the variable name used to access render data inside the vm
	ctxKey string

	// unit contains the compiled template and data provider
	unit *template.TemplateUnit

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewRenderer creates a Renderer for a compiled template unit.
func NewRenderer(handler slog.Handler, unit *template.TemplateUnit) *Renderer {
	handler, logger := helpers.SetupLogger(handler, "risor", "Renderer")

	return &Renderer{
		ctxKey:     constants.Ctx,
		unit:       unit,
		logHandler: handler,
		logger:     logger,
	}
}

func (r *Renderer) String() string {
	return "risor.Renderer"
}

// loadInputData retrieves render data using the data provider in the
// template unit.
func (r *Renderer) loadInputData(ctx context.Context) (map[string]any, error) {
	logger := r.logger.WithGroup("loadInputData")

	if r.unit == nil || r.unit.GetDataProvider() == nil {
		logger.WarnContext(ctx, "no data provider available, using empty data")
		return make(map[string]any), nil
	}

	inputData, err := r.unit.GetDataProvider().GetData(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get render data from provider", "error", err)
		return nil, err
	}

	logger.DebugContext(ctx, "render data loaded from provider", "inputData", inputData)
	return inputData, nil
}

// exec runs the bytecode with the render data bound as a VM global.
func (r *Renderer) exec(
	ctx context.Context,
	bytecode *risorCompiler.Code,
	options ...risorLib.Option,
) (*renderResult, error) {
	logger := r.logger.WithGroup("exec")
	startTime := time.Now()
	result, err := risorLib.EvalCode(ctx, bytecode, options...)
	renderTime := time.Since(startTime)

	if err != nil {
		return nil, fmt.Errorf("risor execution error: %w", err)
	}

	logger.DebugContext(ctx, "execution complete")
	return newRenderResult(r.logHandler, result, renderTime, ""), nil
}

// Render runs the generated rendering function against the data returned by
// the unit's provider.
func (r *Renderer) Render(ctx context.Context) (platform.Response, error) {
	logger := r.logger.WithGroup("Render")
	if r.unit == nil {
		return nil, fmt.Errorf("template unit is nil")
	}

	if r.unit.GetContent() == nil {
		return nil, fmt.Errorf("content is nil")
	}

	bytecode := r.unit.GetContent().GetByteCode()
	if bytecode == nil {
		return nil, ErrBytecodeNil
	}

	templateID := r.unit.GetID()
	if templateID == "" {
		return nil, fmt.Errorf("template ID is empty")
	}
	logger = logger.With("templateID", templateID)

	risorByteCode, ok := bytecode.(*risorCompiler.Code)
	if !ok {
		return nil, fmt.Errorf(
			"unable to type assert bytecode into *risorCompiler.Code for ID: %s",
			templateID,
		)
	}

	rawInputData, err := r.loadInputData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get render data: %w", err)
	}

	runtimeData := convertToRisorOptions(r.ctxKey, rawInputData)

	result, err := r.exec(ctx, risorByteCode, runtimeData...)
	if err != nil {
		return nil, fmt.Errorf("render error: %w", err)
	}
	result.templateID = templateID

	if result.Object == nil {
		logger.Warn("result object is nil")
		return result, nil
	}

	switch result.Object.Type() {
	case "error":
		return result, fmt.Errorf("error returned from generated code: %s", result.Inspect())
	case "function":
		return result, fmt.Errorf("function object returned from generated code: %s", result.Inspect())
	}

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
