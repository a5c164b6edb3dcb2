// Package types enumerates the target engines generated code can run on.
package types

import (
	"fmt"
	"strings"
)

// Type identifies a target scripting engine.
type Type string

const (
	// Starlark is the default target: a Python-like, indentation-based
	// language executed with go.starlark.net.
	Starlark Type = "starlark"

	// Risor is a Go-like, brace-based language executed with the Risor VM.
	Risor Type = "risor"
)

func (t Type) String() string { return string(t) }

// Parse converts an engine name from configuration into a Type.
func Parse(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "starlark":
		return Starlark, nil
	case "risor":
		return Risor, nil
	default:
		return "", fmt.Errorf("unsupported engine type %q", name)
	}
}
