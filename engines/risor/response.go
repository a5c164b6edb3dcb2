package risor

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	risorObject "github.com/risor-io/risor/object"

	"github.com/tavener/go-hamlet/platform/data"
)

// renderResult is a wrapper around the risor object.Object interface, with
// return types adjusted to be engine-neutral.
type renderResult struct {
	risorObject.Object
	renderTime time.Duration
	templateID string
	logHandler slog.Handler
	logger     *slog.Logger
}

func newRenderResult(handler slog.Handler, obj risorObject.Object, renderTime time.Duration, templateID string) *renderResult {
	if handler == nil {
		defaultHandler := slog.NewTextHandler(os.Stdout, nil)
		handler = defaultHandler.WithGroup("risor")
		defaultLogger := slog.New(handler)
		defaultLogger.Warn("Handler is nil, using the default logger configuration.")
	}

	return &renderResult{
		Object:     obj,
		renderTime: renderTime,
		templateID: templateID,
		logHandler: handler,
		logger:     slog.New(handler.WithGroup("renderResult")),
	}
}

func (r *renderResult) String() string {
	return fmt.Sprintf(
		"RenderResult{Type: %s, Value: %v, RenderTime: %s, TemplateID: %s}",
		r.Type(), r.Object, r.GetRenderTime(), r.GetTemplateID())
}

func (r *renderResult) Type() data.Types {
	return data.Types(r.Object.Type())
}

func (r *renderResult) GetTemplateID() string {
	return r.templateID
}

func (r *renderResult) GetRenderTime() string {
	return r.renderTime.String()
}

// HTML returns the rendered markup. A well-formed template returns a string;
// anything else falls back to its display form.
func (r *renderResult) HTML() string {
	if s, ok := r.Object.Interface().(string); ok {
		return s
	}
	return r.Object.Inspect()
}
