package starlark

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	starlarkLib "go.starlark.net/starlark"

	"github.com/tavener/go-hamlet/platform/data"
)

// renderResult wraps the value the generated rendering function returned.
type renderResult struct {
	starlarkLib.Value
	renderTime time.Duration
	templateID string
	logHandler slog.Handler
	logger     *slog.Logger
}

func newRenderResult(handler slog.Handler, obj starlarkLib.Value, renderTime time.Duration, templateID string) *renderResult {
	if handler == nil {
		defaultHandler := slog.NewTextHandler(os.Stdout, nil)
		handler = defaultHandler.WithGroup("starlark")
		defaultLogger := slog.New(handler)
		defaultLogger.Warn("Handler is nil, using the default logger configuration.")
	}

	if obj == nil {
		obj = starlarkLib.None
	}

	return &renderResult{
		Value:      obj,
		renderTime: renderTime,
		templateID: templateID,
		logHandler: handler,
		logger:     slog.New(handler.WithGroup("renderResult")),
	}
}

func (r *renderResult) String() string {
	return fmt.Sprintf(
		"RenderResult{Type: %s, Value: %v, RenderTime: %s, TemplateID: %s}",
		r.Type(), r.Value, r.GetRenderTime(), r.GetTemplateID())
}

func (r *renderResult) Type() data.Types {
	switch r.Value.Type() {
	case "NoneType":
		return data.NONE
	case "bool":
		return data.BOOL
	case "int":
		return data.INT
	case "float":
		return data.FLOAT
	case "string":
		return data.STRING
	case "list":
		return data.LIST
	case "tuple":
		return data.TUPLE
	case "dict":
		return data.MAP
	case "set":
		return data.SET
	case "function":
		return data.FUNCTION
	default:
		r.logger.Error("Unknown type", "type", r.Value.Type())
		return data.ERROR
	}
}

func (r *renderResult) GetTemplateID() string {
	return r.templateID
}

func (r *renderResult) GetRenderTime() string {
	return r.renderTime.String()
}

func (r *renderResult) Inspect() string {
	return r.Value.String()
}

// HTML returns the rendered markup. A well-formed template returns a string;
// anything else falls back to its display form.
func (r *renderResult) HTML() string {
	if s, ok := starlarkLib.AsString(r.Value); ok {
		return s
	}
	return r.Value.String()
}

// Interface returns the Go native type for the Starlark value.
func (r *renderResult) Interface() any {
	v, err := convertStarlarkValueToInterface(r.Value)
	if err != nil {
		r.logger.Error("Failed to convert Starlark value to interface", "error", err)
		return nil
	}
	return v
}
