package textfmt

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/editkit/pkg/highlight"
)

func TestViewer_SetTextValidatesAndHighlights(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var lastHTML string
	var lastErr *ValidationError
	v := NewViewer(ViewerOptions{
		Format: highlight.FormatJSON,
		OnHTML: func(html string) {
			mu.Lock()
			lastHTML = html
			mu.Unlock()
		},
		OnValidation: func(err *ValidationError) {
			mu.Lock()
			lastErr = err
			mu.Unlock()
		},
	})
	defer v.Close()

	v.SetText(`{"key": "value"}`)

	mu.Lock()
	defer mu.Unlock()
	assert.Nil(t, lastErr)
	assert.Contains(t, lastHTML, `<span class="syntax-key">`)
}

func TestViewer_InvalidTextReportsError(t *testing.T) {
	t.Parallel()

	v := NewViewer(ViewerOptions{Format: highlight.FormatJSON})
	defer v.Close()

	v.SetText("{broken")
	require.NotNil(t, v.Err())

	v.SetText(`{"fixed": true}`)
	assert.Nil(t, v.Err())
}

func TestViewer_SetFormatConvertsValue(t *testing.T) {
	t.Parallel()

	v := NewViewer(ViewerOptions{Format: highlight.FormatYAML})
	defer v.Close()

	v.SetText("name: demo\ncount: 3")

	v.SetFormat(highlight.FormatJSON)
	assert.Equal(t, highlight.FormatJSON, v.Format())
	assert.Contains(t, v.Text(), `"name": "demo"`)

	v.SetFormat(highlight.FormatYAML)
	got, err := Parse(v.Text(), highlight.FormatYAML)
	require.NoError(t, err)
	want, err := Parse("name: demo\ncount: 3", highlight.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestViewer_SetFormatKeepsInvalidText(t *testing.T) {
	t.Parallel()

	v := NewViewer(ViewerOptions{Format: highlight.FormatJSON})
	defer v.Close()

	v.SetText("{not valid json")
	v.SetFormat(highlight.FormatYAML)

	assert.Equal(t, "{not valid json", v.Text())
	assert.Equal(t, highlight.FormatYAML, v.Format())
}

func TestViewer_DefaultsToText(t *testing.T) {
	t.Parallel()

	v := NewViewer(ViewerOptions{})
	defer v.Close()

	v.SetText("<anything>")
	assert.Equal(t, highlight.FormatText, v.Format())
	assert.Nil(t, v.Err())
	assert.Equal(t, "&lt;anything&gt;", v.HTML())
}
