package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewCLILogger_NotNil verifies that NewCLILogger returns a non-nil *Logger.
func TestNewCLILogger_NotNil(t *testing.T) {
	l := NewCLILogger("test", &bytes.Buffer{}, Options{})
	require.NotNil(t, l)
}

// TestNewCLILogger_RoleField verifies that console entries carry the role.
func TestNewCLILogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewCLILogger("test-role", &buf, Options{NoColor: true})

	l.Warn().Msg("hello")

	assert.Contains(t, buf.String(), "role=test-role")
	assert.Contains(t, buf.String(), "hello")
}

// TestNewCLILogger_DefaultLevelIsWarn verifies that info entries are dropped
// without verbosity or debug.
func TestNewCLILogger_DefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	l := NewCLILogger("level", &buf, Options{NoColor: true})

	l.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

// TestNewCLILogger_CallerOnlyInDebug verifies that the func field is present
// only in debug mode.
func TestNewCLILogger_CallerOnlyInDebug(t *testing.T) {
	var plain, debug bytes.Buffer

	NewCLILogger("c", &plain, Options{NoColor: true}).Warn().Msg("x")
	NewCLILogger("c", &debug, Options{NoColor: true, Debug: true}).Warn().Msg("x")

	assert.NotContains(t, plain.String(), "TestNewCLILogger_CallerOnlyInDebug")
	assert.Contains(t, debug.String(), "TestNewCLILogger_CallerOnlyInDebug")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestOptions_Level(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, Options{}.Level())
	assert.Equal(t, zerolog.WarnLevel, Options{Verbosity: 1}.Level())
	assert.Equal(t, zerolog.InfoLevel, Options{Verbosity: 2}.Level())
	assert.Equal(t, zerolog.DebugLevel, Options{Debug: true}.Level())
	assert.Equal(t, zerolog.DebugLevel, Options{Debug: true, Verbosity: 3}.Level())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_IsIndependent verifies that the child logger is a
// distinct instance from the parent.
func TestGetChildLogger_IsIndependent(t *testing.T) {
	parent := NewCLILogger("parent", &bytes.Buffer{}, Options{})
	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestWithContext_RoundTrip verifies that a logger attached with WithContext
// is returned by FromContext.
func TestWithContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewCLILogger("ctx-role", &buf, Options{NoColor: true})

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Warn().Msg("from context")

	assert.Contains(t, buf.String(), "role=ctx-role")
	assert.Contains(t, buf.String(), "from context")
}
