package errors

import (
	stderrors "errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation", err: ValidationError("navbar entry has no link").Build(), expected: 2},
		{name: "config", err: ConfigError("bad yaml").Build(), expected: 7},
		{name: "git", err: GitError("no origin remote").Build(), expected: 8},
		{name: "render", err: RenderError("write failed").Build(), expected: 11},
		{name: "wrapped classified", err: wrap(ConfigError("bad yaml").Build()), expected: 7},
		{name: "unclassified", err: stderrors.New("boom"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, slog.Default())
	verbose := NewCLIErrorAdapter(true, slog.Default())

	require.Empty(t, quiet.FormatError(nil))
	require.Equal(t, "Error: boom", quiet.FormatError(stderrors.New("boom")))
	require.Equal(t, "Error: title cannot be empty", quiet.FormatError(ValidationError("title cannot be empty").Build()))
	require.Equal(t, "Internal error occurred (use -v for details)", quiet.FormatError(InternalError("nil theme").Build()))
	require.Equal(t, "[internal:fatal] nil theme", verbose.FormatError(InternalError("nil theme").Build()))
}

type wrapper struct{ inner error }

func (w wrapper) Error() string { return "outer: " + w.inner.Error() }
func (w wrapper) Unwrap() error { return w.inner }

func wrap(err error) error { return wrapper{inner: err} }
