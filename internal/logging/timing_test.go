package logging

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime(t *testing.T) {
	logFile := initFileLogger(t, slog.LevelDebug, FormatText)

	executed := false
	Time("load content", func() {
		time.Sleep(5 * time.Millisecond)
		executed = true
	})

	assert.True(t, executed)
	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "load content")
	assert.Contains(t, string(content), "duration=")
}

func TestTime_NoLogging(t *testing.T) {
	require.NoError(t, Init(Config{}))
	defer Shutdown()

	executed := false
	Time("noop", func() { executed = true })
	assert.True(t, executed)
}

func TestTimeWithResult(t *testing.T) {
	initFileLogger(t, slog.LevelDebug, FormatText)

	result := TimeWithResult("render", func() int { return 42 })
	assert.Equal(t, 42, result)
}

func TestStartEnd(t *testing.T) {
	logFile := initFileLogger(t, slog.LevelDebug, FormatText)

	ctx := Start("parse notes")
	EndWithCount(ctx, 3)
	End(Start("parse profile"))

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "parse notes")
	assert.Contains(t, string(content), "count=3")
	assert.Contains(t, string(content), "parse profile")
}

func TestLoggerTime_UsesChildLogger(t *testing.T) {
	logFile := initFileLogger(t, slog.LevelDebug, FormatText)

	Get().With("component", "markdown").Time("render note", func() {})

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "component=markdown")
	assert.Contains(t, string(content), "render note")
}
