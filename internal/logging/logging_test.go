package logging

import (
	"bytes"
	"testing"

	"github.com/phuslu/log"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

// Test Plan for logging:
// - Verbosity count maps to warn/info/debug/trace
// - JSON format writes one JSON object per entry
// - Entries below the level are dropped
// - With() attaches a field without changing the parent logger
// - IsTerminal is false for in-memory writers

func TestLevelFromVerbosity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, log.WarnLevel, LevelFromVerbosity(0))
	assert.Equal(t, log.InfoLevel, LevelFromVerbosity(1))
	assert.Equal(t, log.DebugLevel, LevelFromVerbosity(2))
	assert.Equal(t, log.TraceLevel, LevelFromVerbosity(3))
	assert.Equal(t, log.TraceLevel, LevelFromVerbosity(7))
}

func TestNew_JSONFormatAndLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Options{Level: log.InfoLevel, Format: "json", Writer: &buf})

	logger.Debug().Msg("hidden")
	logger.Warn().Str("dir", "/tmp/x").Msg("cannot read directory")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, gjson.Valid(out), out)
	assert.Equal(t, "warn", gjson.Get(out, "level").String())
	assert.Equal(t, "/tmp/x", gjson.Get(out, "dir").String())
	assert.Equal(t, "cannot read directory", gjson.Get(out, "message").String())
}

func TestWith_AddsField(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	parent := New(Options{Level: log.InfoLevel, Format: "json", Writer: &buf})
	child := With(parent, "run_id", "abc")

	child.Info().Msg("child")
	assert.Equal(t, "abc", gjson.Get(buf.String(), "run_id").String())

	buf.Reset()
	parent.Info().Msg("parent")
	assert.False(t, gjson.Get(buf.String(), "run_id").Exists())
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := Discard()
	assert.NotPanics(t, func() {
		logger.Error().Str("k", "v").Msg("dropped")
	})
}

func TestIsTerminal_NonFileWriter(t *testing.T) {
	t.Parallel()

	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
