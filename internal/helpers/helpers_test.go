package helpers

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSHA256(t *testing.T) {
	t.Parallel()

	digest := SHA256("%p hi")
	require.Len(t, digest, 64)
	require.Equal(t, digest, SHA256("%p hi"))
	require.NotEqual(t, digest, SHA256("%p bye"))
}

func TestSHA256Reader(t *testing.T) {
	t.Parallel()

	digest, err := SHA256Reader(strings.NewReader("%p hi"))
	require.NoError(t, err)
	require.Equal(t, SHA256("%p hi"), digest)
}

func TestSetupLogger(t *testing.T) {
	t.Parallel()

	t.Run("nil handler falls back to default", func(t *testing.T) {
		t.Parallel()
		handler, logger := SetupLogger(nil, "starlark", "Compiler")
		require.NotNil(t, handler)
		require.NotNil(t, logger)
	})

	t.Run("group name appears in records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		base := slog.NewTextHandler(&buf, nil)

		_, logger := SetupLogger(base, "starlark", "Compiler")
		logger.Info("compiled", "id", "abc")

		require.Contains(t, buf.String(), "Compiler")
		require.Contains(t, buf.String(), "compiled")
	})
}
