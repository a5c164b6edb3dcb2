package data

import (
	"context"
	"fmt"
	"maps"
)

// StaticProvider returns a predefined map of data on every render. It is
// useful for tests and for templates whose data is known at compile time.
type StaticProvider struct {
	data map[string]any
}

// NewStaticProvider creates a new StaticProvider with the provided data map.
func NewStaticProvider(data map[string]any) *StaticProvider {
	if data == nil {
		data = make(map[string]any)
	}
	return &StaticProvider{data: data}
}

func (p *StaticProvider) String() string {
	return fmt.Sprintf("data.StaticProvider{Keys: %d}", len(p.data))
}

// GetData implements Provider. It returns a clone of the static map so
// callers cannot mutate the original.
func (p *StaticProvider) GetData(_ context.Context) (map[string]any, error) {
	return maps.Clone(p.data), nil
}
