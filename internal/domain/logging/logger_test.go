package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alem-hub/solid-go/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_SingleLineUnchangedMessage(t *testing.T) {
	var out bytes.Buffer
	l := NewConsoleLogger(&out)

	l.Log("button clicked")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "button clicked")
}

func TestNewRecorder_RequiresLogger(t *testing.T) {
	_, err := NewRecorder(nil)
	assert.ErrorIs(t, err, shared.ErrNilLogger)
}

// memoryLogger is an alternative Logger variant.
type memoryLogger struct {
	messages []string
}

func (l *memoryLogger) Log(message string) {
	l.messages = append(l.messages, message)
}

func TestRecorder_SwappingVariantsNeedsNoChanges(t *testing.T) {
	// Console variant.
	var out bytes.Buffer
	console, err := NewRecorder(NewConsoleLogger(&out))
	require.NoError(t, err)
	console.Record("hello")
	assert.Contains(t, out.String(), "hello")

	// Memory variant, same component, zero component changes.
	mem := &memoryLogger{}
	recorder, err := NewRecorder(mem)
	require.NoError(t, err)
	recorder.Record("hello")
	assert.Equal(t, []string{"hello"}, mem.messages)
}
