package makefile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, ".o", cfg.ObjectSuffix)
	assert.Equal(t, "/", cfg.PathSep)
	assert.Equal(t, 80, cfg.LineWidth)
	assert.Equal(t, `\`, cfg.Continuation)
	assert.Equal(t, "include", cfg.IncludeCmd)
	assert.Equal(t, ".depend", cfg.External)
	assert.False(t, cfg.SelfRule)
	assert.Empty(t, cfg.Exclude)
}

func TestConfig_Set(t *testing.T) {
	cfg := NewConfig()

	require.NoError(t, cfg.Set("object-ending", ".obj"))
	require.NoError(t, cfg.Set("path-separator", ""))
	require.NoError(t, cfg.Set("line-width", "132"))
	require.NoError(t, cfg.Set("continuation", "+"))
	require.NoError(t, cfg.Set("exclude", "src/legacy.h, src/gen.h"))
	require.NoError(t, cfg.Set("include-command", ".include"))
	require.NoError(t, cfg.Set("external", "Makefile.dep"))
	require.NoError(t, cfg.Set("selfrule", "yes"))

	assert.Equal(t, ".obj", cfg.ObjectSuffix)
	assert.Equal(t, "", cfg.PathSep)
	assert.Equal(t, 132, cfg.LineWidth)
	assert.Equal(t, "+", cfg.Continuation)
	assert.Equal(t, map[string]bool{"src/legacy.h": true, "src/gen.h": true}, cfg.Exclude)
	assert.Equal(t, ".include", cfg.IncludeCmd)
	assert.Equal(t, "Makefile.dep", cfg.External)
	assert.True(t, cfg.SelfRule)
}

func TestConfig_SetUnknownKey(t *testing.T) {
	cfg := NewConfig()
	assert.Error(t, cfg.Set("object-suffix", ".o"))
}

func TestConfig_SetInvalidLineWidth(t *testing.T) {
	cfg := NewConfig()
	assert.Error(t, cfg.Set("line-width", "wide"))
}

func TestIsTruthy(t *testing.T) {
	assert.True(t, isTruthy("yes"))
	assert.True(t, isTruthy("TRUE"))
	assert.True(t, isTruthy("1"))
	assert.True(t, isTruthy("on"))
	assert.False(t, isTruthy("no"))
	assert.False(t, isTruthy(""))
}
