package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	assert.Equal(t, "Summary Report", SummaryReport{}.Generate())
	assert.Equal(t, "Detailed Report", FullReport{}.Generate())
}

func TestRender_NeedsOnlyGenerator(t *testing.T) {
	// Both variants satisfy the minimal consumer; SummaryReport does so
	// without ever implementing GeneratePDF.
	assert.Equal(t, "Summary Report", Render(SummaryReport{}))
	assert.Equal(t, "Detailed Report", Render(FullReport{}))
}

func TestGeneratePDF_SingleWrite(t *testing.T) {
	var out bytes.Buffer

	err := FullReport{}.GeneratePDF(&out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Detailed Report")
}

// failingWriter always fails.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestGeneratePDF_WriterFailure(t *testing.T) {
	err := FullReport{}.GeneratePDF(failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
