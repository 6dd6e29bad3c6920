package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(Options{Output: &buf, Level: level, AddCaller: false})
	return l, &buf
}

func TestLogger_WritesJSONEntry(t *testing.T) {
	l, buf := newBufferLogger(LevelInfo)

	l.Info("student enrolled", StudentName("Aidos"), RosterIndex(0))

	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "student enrolled", entry.Message)
	assert.Equal(t, "Aidos", entry.Fields["student_name"])
	assert.Equal(t, float64(0), entry.Fields["roster_index"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(LevelWarn)

	l.Debug("hidden")
	l.Info("hidden too")
	assert.Zero(t, buf.Len())

	l.Warn("visible")
	assert.NotZero(t, buf.Len())
}

func TestLogger_WithFields(t *testing.T) {
	l, buf := newBufferLogger(LevelInfo)

	l.With(Component("roster")).Info("ready")

	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "roster", entry.Fields["component"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel(" WARNING "))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
}
