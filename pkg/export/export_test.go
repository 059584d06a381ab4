package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRenderPadsShortRows(t *testing.T) {
	data := Dataset{
		Headers: []string{"Date", "Role", "Assignee"},
		Rows: [][]string{
			{"2025-03-07", "primary", "alice@example.com"},
			{"2025-03-08", "secondary"},
		},
	}

	payload, err := NewCSVExporter().Render(data)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Role,Assignee", lines[0])
	assert.Equal(t, "2025-03-08,secondary,", lines[2])
}

func TestCSVRenderRejectsWideRows(t *testing.T) {
	data := Dataset{
		Headers: []string{"Date"},
		Rows:    [][]string{{"2025-03-07", "extra"}},
	}

	_, err := NewCSVExporter().Render(data)
	require.Error(t, err)
}

func TestCSVRenderRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	require.Error(t, err)
}

func TestPDFRenderProducesDocument(t *testing.T) {
	data := Dataset{
		Title:   "Duty schedule 2025-03-07 to 2025-03-08",
		Headers: []string{"Date", "Role"},
		Rows:    [][]string{{"2025-03-07", "primary"}},
	}

	payload, err := NewPDFExporter().Render(data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}
