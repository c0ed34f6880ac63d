package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaults(t *testing.T) {
	t.Setenv("CTL_LOG_LEVEL", "")
	t.Setenv("CTL_CACHE", "")
	t.Setenv("CTL_DEFAULT_MODEL", "")

	assert.Equal(t, zapcore.WarnLevel, LogLevel())
	assert.False(t, Cache())
	assert.Equal(t, "triangle", DefaultModel())
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("CTL_LOG_LEVEL", "loud")
	t.Setenv("CTL_CACHE", "maybe")

	assert.Equal(t, zapcore.WarnLevel, LogLevel())
	assert.False(t, Cache())
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctl.env")
	require.NoError(t, os.WriteFile(path, []byte("CTL_LOG_LEVEL=debug\nCTL_CACHE=true\nCTL_DEFAULT_MODEL=mutex\n"), 0o600))

	t.Setenv("CTL_ENV", path)
	// Registered with t.Setenv so the values loaded below are restored.
	t.Setenv("CTL_LOG_LEVEL", "")
	t.Setenv("CTL_CACHE", "")
	t.Setenv("CTL_DEFAULT_MODEL", "")
	for _, k := range []string{"CTL_LOG_LEVEL", "CTL_CACHE", "CTL_DEFAULT_MODEL"} {
		require.NoError(t, os.Unsetenv(k))
	}

	require.NoError(t, Load())
	assert.Equal(t, zapcore.DebugLevel, LogLevel())
	assert.True(t, Cache())
	assert.Equal(t, "mutex", DefaultModel())
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CTL_ENV", filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, Load())
}

func TestLoad_UnreadableFile(t *testing.T) {
	// A directory exists but cannot be read as an env file.
	t.Setenv("CTL_ENV", t.TempDir())
	err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load ")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		cache    string
		want     string
	}{
		{name: "log level", logLevel: "loud", want: "invalid CTL_LOG_LEVEL"},
		{name: "cache", cache: "maybe", want: "invalid CTL_CACHE"},
		{name: "valid", logLevel: "error", cache: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CTL_ENV", filepath.Join(t.TempDir(), "absent.env"))
			t.Setenv("CTL_LOG_LEVEL", tt.logLevel)
			t.Setenv("CTL_CACHE", tt.cache)

			err := Load()
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
