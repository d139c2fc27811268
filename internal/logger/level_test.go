package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// logAll writes one message per level the solve command uses.
func logAll(l *ConsoleLogger) {
	l.LogTrace("accepted word")
	l.LogDebug("scan summary")
	l.LogInfo("resolved config")
	l.LogWarn("read error")
}

func TestLevelThresholds(t *testing.T) {
	tests := []struct {
		level string
		shown []string
		muted []string
	}{
		{level: "trace", shown: []string{"accepted word", "scan summary", "resolved config", "read error"}},
		{level: "debug", shown: []string{"scan summary", "resolved config", "read error"}, muted: []string{"accepted word"}},
		{level: "info", shown: []string{"resolved config", "read error"}, muted: []string{"accepted word", "scan summary"}},
		{level: "warn", shown: []string{"read error"}, muted: []string{"accepted word", "scan summary", "resolved config"}},
		{level: "error", muted: []string{"accepted word", "scan summary", "resolved config", "read error"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logAll(NewConsoleLogger(buf, tt.level))

			for _, msg := range tt.shown {
				assert.Contains(t, buf.String(), msg)
			}
			for _, msg := range tt.muted {
				assert.NotContains(t, buf.String(), msg)
			}
		})
	}
}

func TestLevelTags(t *testing.T) {
	buf := &bytes.Buffer{}
	logAll(NewConsoleLogger(buf, "trace"))

	for _, tag := range []string{"[TRACE] accepted word", "[DEBUG] scan summary", "[INFO] resolved config", "[WARN] read error"} {
		assert.Contains(t, buf.String(), tag)
	}
}

func TestNormalizeLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "info"},
		{"verbose", "info"},
		{"DEBUG", "debug"},
		{" WaRn ", "warn"},
		{"error", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeLogLevel(tt.in))
		})
	}
}
