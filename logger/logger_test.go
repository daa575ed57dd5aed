package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLoggingWithOptions(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		Output:    &buf,
	})

	Get().Info("hello", "count", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "test", record["subsystem"])
	assert.InDelta(t, 3, record["count"], 0)
}

func TestConfigureLogging_Options(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLogging("app", WithJSON(), WithLevel(slog.LevelWarn), WithOutput(&buf))

	Get().Info("dropped")
	assert.Empty(t, buf.String())

	Get().Warn("kept")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
	assert.Contains(t, buf.String(), `"subsystem":"app"`)
}

func TestGet_ContextValues(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "default",
		JSON:      true,
		Output:    &buf,
	})

	ctx := With(WithSubsystem(t.Context(), "overridden"), "list", "orders")
	Get(ctx).Info("with values")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "overridden", record["subsystem"])
	assert.Equal(t, "orders", record["list"])
}

func TestGet_Muted(t *testing.T) {
	t.Parallel()

	ctx := WithMuted(t.Context(), true)
	assert.Same(t, Discard(), Get(ctx))
	assert.False(t, Get(ctx).Enabled(ctx, slog.LevelError))

	unmuted := WithMuted(t.Context(), false)
	assert.NotSame(t, Discard(), Get(unmuted))
}

func TestWith_NoValues(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	assert.Equal(t, ctx, With(ctx))
}

func TestAnnotateError(t *testing.T) {
	t.Parallel()

	errBase := errors.New("boom")

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, AnnotateError(nil, "key", "value"))
	})

	t.Run("preserves message and chain", func(t *testing.T) {
		t.Parallel()

		err := AnnotateError(errBase, "capacity", 4)

		assert.Equal(t, "boom", err.Error())
		require.ErrorIs(t, err, errBase)
	})

	t.Run("collects chained attributes", func(t *testing.T) {
		t.Parallel()

		err := AnnotateError(AnnotateError(errBase, "inner", 1), "outer", 2)
		attrs := Attrs(err)

		require.Len(t, attrs, 2)
		assert.Equal(t, "outer", attrs[0].Key)
		assert.Equal(t, "inner", attrs[1].Key)
	})

	t.Run("plain errors have no attributes", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, Attrs(errBase))
	})
}

func TestSlogErrorLogger_Handle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := &slogErrorLogger{inner: slog.NewJSONHandler(&buf, nil)}
	log := slog.New(handler)

	err := AnnotateError(errors.New("allocation failed"), "requested", 64)
	log.Error("grow failed", "error", err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "allocation failed", record["error"])
	assert.InDelta(t, 64, record["requested"], 0)
}
