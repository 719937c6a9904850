package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, logging.ParseLevel(in), "level %q", in)
	}
	assert.True(t, logging.ValidLevel("warning"))
	assert.False(t, logging.ValidLevel("verbose"))
}

func TestNew_JSONRenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New("info", "json", &buf)
	log.Warn("negative cycle", "error", errors.New("boom"), "algorithm", "bellman-ford")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "boom", rec["err"])
	assert.NotContains(t, rec, "error")
	assert.Equal(t, "bellman-ford", rec["algorithm"])
	assert.Equal(t, "WARN", rec["level"])
}

func TestNew_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New("warn", "text", &buf)
	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Error("shown", "error", "x")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "err=x")
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() { logging.NewNop().Error("dropped") })
}
