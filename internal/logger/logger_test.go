package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestNewLogger(t *testing.T) {
	l := NewLogger("market-api")

	require.NotNil(t, l)
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "market-api")

	l.Info().Msg("hello")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "market-api", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_EntryFields")
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "inherited-role")

	child := parent.GetChildLogger()
	child.Info().Msg("child message")

	assert.NotSame(t, parent, child)
	assert.Equal(t, "inherited-role", lastEntry(t, &buf)["role"])
}

func TestWithTraceIDAndUserID(t *testing.T) {
	var buf bytes.Buffer
	root := newLogger(&buf, "market-api")

	l := root.WithTraceID("trace-1").WithUserID(7)
	l.Info().Msg("scoped")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "trace-1", entry["trace_id"])
	assert.Equal(t, float64(7), entry["user_id"])

	// the parent stays untouched
	root.Info().Msg("root")
	entry = lastEntry(t, &buf)
	assert.NotContains(t, entry, "trace_id")
	assert.NotContains(t, entry, "user_id")
}

func TestFromContext(t *testing.T) {
	t.Run("nothing attached", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := newLogger(&buf, "ctx").WithTraceID("abc").WithContext(context.Background())

		FromContext(ctx).Info().Msg("from context")

		assert.Equal(t, "abc", lastEntry(t, &buf)["trace_id"])
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	ctx := newLogger(&buf, "req").WithTraceID("req-trace").WithContext(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-trace", lastEntry(t, &buf)["trace_id"])
	require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	require.NoError(t, SetLevel(""))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel(), "empty level keeps the current one")

	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
