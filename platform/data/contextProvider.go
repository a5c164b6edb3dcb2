package data

import (
	"context"
	"fmt"
	"maps"

	"github.com/tavener/go-hamlet/platform/constants"
)

// ContextProvider retrieves render data stored in the context under a
// configured key. It enables the "compile once, render many times" pattern:
// the same renderer is reused while each call carries its own data.
type ContextProvider struct {
	contextKey constants.ContextKey
}

// NewContextProvider creates a new ContextProvider with the given context key.
func NewContextProvider(contextKey constants.ContextKey) *ContextProvider {
	return &ContextProvider{contextKey: contextKey}
}

func (p *ContextProvider) String() string {
	return fmt.Sprintf("data.ContextProvider{Key: %s}", p.contextKey)
}

// GetData extracts a map[string]any from the context using the configured
// key. A missing value yields an empty map rather than an error so templates
// can render without data.
func (p *ContextProvider) GetData(ctx context.Context) (map[string]any, error) {
	if p.contextKey == "" {
		return nil, fmt.Errorf("context key is empty")
	}

	value := ctx.Value(p.contextKey)
	if value == nil {
		return make(map[string]any), nil
	}

	renderData, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid render data type: expected map[string]any, got %T", value)
	}

	return renderData, nil
}

// AddDataToContext stores a data map in the context for a later render
// call. Maps passed in later calls are merged over earlier ones.
func (p *ContextProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	if p.contextKey == "" {
		return ctx, fmt.Errorf("context key is empty")
	}

	toStore := make(map[string]any)
	if existing, ok := ctx.Value(p.contextKey).(map[string]any); ok {
		maps.Copy(toStore, existing)
	}
	for _, d := range data {
		maps.Copy(toStore, d)
	}

	return context.WithValue(ctx, p.contextKey, toStore), nil
}
