package logger

import (
	"testing"

	"github.com/sendsafe/sendsafe-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		env       string
		wantLevel zapcore.Level
	}{
		{"development console debug", "debug", "console", "development", zapcore.DebugLevel},
		{"production json", "warn", "json", "production", zapcore.WarnLevel},
		{"invalid level falls back to info", "loud", "console", "development", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewLogger(
				&config.LoggingConfig{Level: tt.level, Format: tt.format},
				&config.AppConfig{Name: "SendSafe API", Environment: tt.env},
			)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}
