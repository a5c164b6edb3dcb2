package risor

import (
	risorLib "github.com/risor-io/risor"
)

// convertToRisorOptions converts a Go map into Risor VM options. The input
// data is wrapped in a single context object passed to the VM.
//
// For example, if the inputData is {"foo": "bar", "baz": 123}, the output
// will be:
//
//	[]risorLib.Option{
//	  risorLib.WithGlobal("ctx", map[string]any{
//	    "foo": "bar",
//	    "baz": 123,
//	  }),
//	}
func convertToRisorOptions(ctxKey string, inputData map[string]any) []risorLib.Option {
	return []risorLib.Option{
		risorLib.WithGlobal(ctxKey, inputData),
	}
}
