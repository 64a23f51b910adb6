package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"orderhub/internal/config"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{level: "debug", expected: zapcore.DebugLevel},
		{level: "info", expected: zapcore.InfoLevel},
		{level: "warn", expected: zapcore.WarnLevel},
		{level: "error", expected: zapcore.ErrorLevel},
		{level: "not-a-level", expected: zapcore.InfoLevel},
		{level: "", expected: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, err := New(config.LogConfig{Level: tt.level, Format: "json"})
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.expected))
			if tt.expected > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.expected-1))
			}
		})
	}
}

func TestNew_Formats(t *testing.T) {
	for _, format := range []string{"json", "console", "", "xml"} {
		t.Run(format, func(t *testing.T) {
			l, err := New(config.LogConfig{Level: "info", Format: format})
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}
