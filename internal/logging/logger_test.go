package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initFileLogger(t *testing.T, level slog.Level, format LogFormat) string {
	t.Helper()

	logFile := filepath.Join(t.TempDir(), "logs", "termfolio.log")
	require.NoError(t, Init(Config{
		FilePath:   logFile,
		Level:      level,
		Format:     format,
		MaxSizeMB:  10,
		MaxBackups: 2,
	}))
	t.Cleanup(func() { _ = Shutdown() })
	return logFile
}

func TestInit(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantEnabled bool
	}{
		{
			name: "text file",
			config: Config{
				FilePath: filepath.Join(t.TempDir(), "text.log"),
				Level:    slog.LevelInfo,
				Format:   FormatText,
			},
			wantEnabled: true,
		},
		{
			name: "json file in missing directory",
			config: Config{
				FilePath: filepath.Join(t.TempDir(), "nested", "dir", "json.log"),
				Level:    slog.LevelDebug,
				Format:   FormatJSON,
			},
			wantEnabled: true,
		},
		{
			name:        "empty path is noop",
			config:      Config{},
			wantEnabled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, Init(tt.config))
			defer Shutdown()

			assert.Equal(t, tt.wantEnabled, IsEnabled())

			logger := Get()
			require.NotNil(t, logger)
			logger.Info("test message")
			logger.Debug("test debug")
			logger.Warn("test warning")
			logger.Error("test error")
		})
	}
}

func TestGet_BeforeInitIsNoop(t *testing.T) {
	require.NoError(t, Shutdown())
	assert.False(t, Get().IsEnabled())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input  string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"DEBUG", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"", slog.LevelInfo, true},
		{"verbose", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLevel(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input  string
		want   LogFormat
		wantOK bool
	}{
		{"text", FormatText, true},
		{"json", FormatJSON, true},
		{"JSON", FormatJSON, true},
		{"", FormatText, true},
		{"xml", FormatText, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseFormat(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestLoggerWith_WritesContext(t *testing.T) {
	logFile := initFileLogger(t, slog.LevelInfo, FormatText)

	Get().With("component", "palette").Info("submitted", "input", "lab")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "component=palette")
	assert.Contains(t, string(content), "input=lab")
}

func TestLoggerWith_NoopStaysNoop(t *testing.T) {
	require.NoError(t, Init(Config{}))
	defer Shutdown()

	assert.False(t, Get().With("k", "v").IsEnabled())
}

func TestPackageLevelFunctions_RespectLevel(t *testing.T) {
	logFile := initFileLogger(t, slog.LevelWarn, FormatJSON)

	Debug("hidden debug")
	Info("hidden info")
	Warn("visible warn", "key", "value")
	Error("visible error")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hidden")
	assert.Contains(t, string(content), `"msg":"visible warn"`)
	assert.Contains(t, string(content), `"msg":"visible error"`)
}
