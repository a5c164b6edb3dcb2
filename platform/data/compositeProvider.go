package data

import (
	"context"
	"fmt"
	"maps"
)

// CompositeProvider combines multiple providers and merges their results.
// Later providers in the chain override values from earlier providers, which
// lets runtime data shadow compile-time defaults.
type CompositeProvider struct {
	providers []Provider
}

// NewCompositeProvider creates a new CompositeProvider with the given
// providers, queried in the order they are provided.
func NewCompositeProvider(providers ...Provider) *CompositeProvider {
	return &CompositeProvider{providers: providers}
}

func (p *CompositeProvider) String() string {
	return fmt.Sprintf("data.CompositeProvider{Providers: %d}", len(p.providers))
}

// AddDataToContext stores render data through the first chained provider
// that accepts context data, typically the ContextProvider layered over the
// static defaults.
func (p *CompositeProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	type contextAdder interface {
		AddDataToContext(context.Context, ...map[string]any) (context.Context, error)
	}

	for _, provider := range p.providers {
		if adder, ok := provider.(contextAdder); ok {
			return adder.AddDataToContext(ctx, data...)
		}
	}
	return ctx, fmt.Errorf("no chained provider accepts context data")
}

// GetData implements Provider. It calls each provider in sequence and merges
// the results.
func (p *CompositeProvider) GetData(ctx context.Context) (map[string]any, error) {
	result := make(map[string]any)

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}
		data, err := provider.GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("error from provider %d: %w", i, err)
		}
		maps.Copy(result, data)
	}

	return result, nil
}
