package logger

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/crosstab-cli/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHandlerRejects(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LogConfig
	}{
		{"level", config.LogConfig{Level: "loud"}},
		{"output", config.LogConfig{Output: "syslog"}},
		{"file without path", config.LogConfig{Output: "file"}},
		{"format", config.LogConfig{Format: "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewHandler(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestJSONFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	h, closer, err := NewHandler(config.LogConfig{Level: "info", Format: "json", Output: "file", FilePath: path})
	require.NoError(t, err)

	l := slog.New(h)
	l.Debug("hidden")
	l.Info("report built", "run_id", "abc")
	require.NoError(t, closer())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, sonic.Unmarshal(b, &entry))
	assert.Equal(t, "report built", entry["msg"])
	assert.Equal(t, "abc", entry["run_id"])
	ts, ok := entry["time"].(string)
	require.True(t, ok)
	_, err = time.Parse(TimeFormat, ts)
	assert.NoError(t, err)
}

func TestSetupInstallsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	closer, err := Setup(config.LogConfig{Level: "error", Output: "stderr"})
	require.NoError(t, err)
	require.NoError(t, closer())
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelError))
}
