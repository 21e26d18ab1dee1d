package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())
}

// TestNew_RoleAndTimestamp verifies that every entry contains the role and a
// timestamp.
func TestNew_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "test-role", "info")
	require.NoError(t, err)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

// TestNew_LevelFilters verifies that entries below the configured level are
// dropped.
func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "r", "warn")
	require.NoError(t, err)

	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.NotZero(t, buf.Len())
}

// TestNew_UnknownLevel verifies that a bad level is reported while a usable
// debug logger is still returned.
func TestNew_UnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "r", "loud")
	require.Error(t, err)
	require.NotNil(t, l)
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())
}

// TestCallerFieldName verifies that the caller field is named "func".
func TestCallerFieldName(t *testing.T) {
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNop_DiscardsOutput verifies that Nop loggers are disabled.
func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

// TestGetChildLogger_InheritsFields verifies that the child logger keeps the
// parent's fields and does not leak its own fields back.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent, _ := New(&buf, "parent", "debug")

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("extra", "x").Logger()
	child.Info().Msg("child")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "parent", entry["role"])
	assert.Equal(t, "x", entry["extra"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), "extra")
}

// TestContextRoundTrip verifies that a logger stored with WithContext is
// returned by FromContext.
func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(&buf, "ctx-role", "debug")

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	assert.Equal(t, "ctx-role", decodeEntry(t, &buf)["role"])
}

// TestFromContext_Empty verifies that a bare context still yields a logger.
func TestFromContext_Empty(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}
