package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Type
		wantErr bool
	}{
		{"starlark", Starlark, false},
		{"risor", Risor, false},
		{"", Starlark, false},
		{"lua", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("input "+tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
