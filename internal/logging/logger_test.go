package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in, slog.LevelWarn))
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("quiet by default", func(t *testing.T) {
		t.Setenv("GONANA_LOG_LEVEL", "")
		var buf bytes.Buffer
		logger := newLogger(&buf, false)

		logger.Info("dialing rpc")
		logger.Warn("slow rpc")

		assert.NotContains(t, buf.String(), "dialing rpc")
		assert.Contains(t, buf.String(), "level=WARN msg=\"slow rpc\"")
		assert.NotContains(t, buf.String(), "time=")
	})

	t.Run("debug enables source", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, true)

		logger.Debug("sent transaction")

		assert.Contains(t, buf.String(), "sent transaction")
		assert.Contains(t, buf.String(), "source=")
	})
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/usecase/deploy_contract.go", shortPath("/home/dev/src/gonana-deploy/internal/usecase/deploy_contract.go"))
	assert.Equal(t, "main.go", shortPath("/elsewhere/main.go"))
}
